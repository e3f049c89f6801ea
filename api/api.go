package api

import (
	"net/http"

	"github.com/calvinmclean/babyapi"
)

// Strip is the part of the controller the API needs.
type Strip interface {
	SetRGB(r, g, b int) error
}

// Color is the resource the API exposes. Creating or updating one
// recolors the strip; values outside 0-255 are clamped like any other
// command.
type Color struct {
	babyapi.DefaultResource

	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
}

// New builds an HTTP API around the strip.
func New(strip Strip) *babyapi.API[*Color] {
	colors := babyapi.NewAPI("Colors", "/colors", func() *Color { return &Color{} })

	colors.SetOnCreateOrUpdate(func(w http.ResponseWriter, r *http.Request, c *Color) *babyapi.ErrResponse {
		if err := strip.SetRGB(c.Red, c.Green, c.Blue); err != nil {
			return babyapi.InternalServerError(err)
		}
		return nil
	})

	return colors
}
