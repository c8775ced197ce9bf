package services

import (
	"errors"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"
)

// Per-page rates in whole rupees.
const (
	ColorRatePerPage      int64 = 5
	BlackWhiteRatePerPage int64 = 2
)

// PricingEngine prices print jobs from their page count, copies and color
// mode. Paper size and binding do not change the price.
//
// Example:
//
//	engine := services.NewPricingEngine()
//	total, err := engine.ComputeTotal(docs)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(total) // 65 INR
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// RateFor returns the per-page rate of a color mode.
func (PricingEngine) RateFor(mode document.ColorMode) kernel.Money {
	if mode == document.Color {
		return mustMoney(ColorRatePerPage)
	}
	return mustMoney(BlackWhiteRatePerPage)
}

// LineTotal is rate * pageCount * copies for one document.
func (e PricingEngine) LineTotal(doc *document.Document) (kernel.Money, error) {
	if err := doc.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return e.RateFor(doc.Options().Color()).Multiply(int64(doc.PrintedPages()))
}

// ComputeTotal sums the line totals of docs. An empty list is rejected since
// an order always references at least one document. A sum past
// kernel.MaxAmount fails with an out-of-range error instead of wrapping.
func (e PricingEngine) ComputeTotal(docs []*document.Document) (kernel.Money, error) {
	if len(docs) == 0 {
		return kernel.Money{}, errs.NewValueIsRequiredErrorWithCause("documentIds", errors.New("nothing to price"))
	}

	total := kernel.ZeroMoney()
	for _, doc := range docs {
		line, err := e.LineTotal(doc)
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(line); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func mustMoney(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}
