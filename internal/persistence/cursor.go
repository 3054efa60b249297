package persistence

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"example.com/fitpulse/internal/domain"
)

// ErrInvalidCursor is returned for tokens DecodeCursor cannot parse.
var ErrInvalidCursor = errors.New("invalid cursor")

const cursorVersion = "v1"

// EncodeCursor turns a page position into a URL-safe token of the form
// base64url("v1:<unix nanos>:<workout id>"). A nil cursor encodes to "".
func EncodeCursor(c *domain.Cursor) string {
	if c == nil {
		return ""
	}
	raw := cursorVersion + ":" + strconv.FormatInt(c.CreatedAt.UnixNano(), 10) + ":" + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor. A blank token means
// "first page" and yields nil.
func DecodeCursor(token string) (*domain.Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	version, rest, ok := strings.Cut(string(raw), ":")
	if !ok || version != cursorVersion {
		return nil, ErrInvalidCursor
	}
	nanos, id, ok := strings.Cut(rest, ":")
	if !ok || id == "" {
		return nil, ErrInvalidCursor
	}
	ts, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &domain.Cursor{CreatedAt: time.Unix(0, ts).UTC(), ID: id}, nil
}
