package pdflayout

import (
	"github.com/tsawler/pdflayout/contentstream"
	"github.com/tsawler/pdflayout/device"
)

// Source draws one page onto a device: BeginPage, the page's events, then
// EndPage.
type Source interface {
	Render(dev device.Device) error
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(dev device.Device) error

// Render calls f(dev)
func (f SourceFunc) Render(dev device.Device) error {
	return f(dev)
}

// ContentPage returns a Source that interprets a page's content streams
func ContentPage(p *contentstream.Page) Source {
	return SourceFunc(func(dev device.Device) error {
		return contentstream.NewInterpreter(dev).ProcessPage(p)
	})
}
