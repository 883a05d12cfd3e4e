package handlers

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// setFlash stores the user-facing notification messages for the next page
// view. This is the toast side channel; losing it never affects state.
func setFlash(c *fiber.Ctx, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(b)),
		Path:     "/",
		HTTPOnly: true,
	})
}

// popFlash reads and clears the pending messages.
func popFlash(c *fiber.Ctx) []string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HTTPOnly: true})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	var msgs []string
	if json.Unmarshal([]byte(decoded), &msgs) != nil {
		return nil
	}
	return msgs
}
