package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the request id.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID makes sure every request has an id. A caller supplied
// X-Request-ID is kept when it is at most 128 printable ASCII characters;
// otherwise a UUID is generated. The id is echoed in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// RequestIDFrom returns the id stored by RequestID, or "" outside it.
func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
