package builder

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every error returned by a Builder.
type ErrorKind uint8

const (
	// KindAuction: the service answered non-2xx with a structured error body.
	KindAuction ErrorKind = iota + 1
	// KindTransport: the call failed before an application status could be
	// interpreted, or a response body could not be read or decoded.
	KindTransport
	// KindParse: a URL or a join of the base URL with an endpoint path was invalid.
	KindParse
	// KindInit: the client could not be constructed.
	KindInit
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuction:
		return "auction"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindInit:
		return "init"
	default:
		return "unknown"
	}
}

// AuctionError is the service's error body.
type AuctionError struct {
	Message    string `json:"error"`
	StatusCode uint64 `json:"status_code"`
	StatusText string `json:"status_text"`
}

func (e *AuctionError) Error() string {
	return fmt.Sprintf("error: %s, code: %d, text: %s", e.Message, e.StatusCode, e.StatusText)
}

// Error is returned by every Client operation. Auction is set only for
// KindAuction; Err holds the underlying cause for the other kinds.
type Error struct {
	Kind    ErrorKind
	Auction *AuctionError
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuction:
		if e.Auction == nil {
			return "auction error"
		}
		return e.Auction.Error()
	case KindTransport:
		return fmt.Sprintf("failed to call api: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("invalid url: %v", e.Err)
	case KindInit:
		return fmt.Sprintf("failed to init builder client: %v", e.Err)
	default:
		return fmt.Sprintf("builder error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	if e.Kind == KindAuction {
		if e.Auction == nil {
			return nil
		}
		return e.Auction
	}
	return e.Err
}

func auctionErr(body *AuctionError) *Error { return &Error{Kind: KindAuction, Auction: body} }
func transportErr(err error) *Error        { return &Error{Kind: KindTransport, Err: err} }
func parseErr(err error) *Error            { return &Error{Kind: KindParse, Err: err} }
func initErr(err error) *Error             { return &Error{Kind: KindInit, Err: err} }

// KindOf reports the kind of a builder error, or 0 if err did not come from
// this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// AsAuctionError returns the service error body carried by err, if any.
func AsAuctionError(err error) (*AuctionError, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAuction && e.Auction != nil {
		return e.Auction, true
	}
	return nil, false
}

// IsGone reports whether the service said no auction exists (or exists any
// longer) at the requested height.
func IsGone(err error) bool {
	ae, ok := AsAuctionError(err)
	return ok && ae.StatusCode == http.StatusGone
}
