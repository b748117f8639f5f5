package device

import "github.com/tsawler/pdflayout/model"

// Receiver consumes finished pages. A page is handed over only once it is
// fully built and analyzed; the receiver owns it afterwards.
type Receiver interface {
	ReceiveLayout(page *model.Page) error
}

// ReceiverFunc adapts a function to the Receiver interface
type ReceiverFunc func(page *model.Page) error

// ReceiveLayout calls f(page)
func (f ReceiverFunc) ReceiveLayout(page *model.Page) error {
	return f(page)
}

// Aggregator is a Receiver that keeps the most recent page
type Aggregator struct {
	result *model.Page
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// ReceiveLayout stores page as the result
func (a *Aggregator) ReceiveLayout(page *model.Page) error {
	a.result = page
	return nil
}

// Result returns the last page received, or nil
func (a *Aggregator) Result() *model.Page {
	return a.result
}
