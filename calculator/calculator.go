package calculator

import (
	"errors"
	"math"
)

var (
	ErrBalance  = errors.New("Account balance must be greater than zero")
	ErrRisk     = errors.New("Risk must be greater than 0% and at most 100%")
	ErrPrice    = errors.New("Entry and stop-loss prices must be greater than zero")
	ErrStopLoss = errors.New("Stop-loss price must differ from the entry price")
)

// Input describes a planned trade.
type Input struct {
	Balance     float64
	RiskPercent float64
	Entry       float64
	StopLoss    float64
}

// Result is the position that risks exactly RiskAmount if the stop is hit.
type Result struct {
	RiskAmount    float64
	Units         float64
	PositionValue float64
	Long          bool
}

// PositionSize computes the position for in.
func PositionSize(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	riskAmount := in.Balance * in.RiskPercent / 100
	units := riskAmount / math.Abs(in.Entry-in.StopLoss)
	return Result{
		RiskAmount:    riskAmount,
		Units:         units,
		PositionValue: units * in.Entry,
		Long:          in.StopLoss < in.Entry,
	}, nil
}

func (in Input) Validate() error {
	if !positive(in.Balance) {
		return ErrBalance
	}
	if !positive(in.RiskPercent) || in.RiskPercent > 100 {
		return ErrRisk
	}
	if !positive(in.Entry) || !positive(in.StopLoss) {
		return ErrPrice
	}
	if in.Entry == in.StopLoss {
		return ErrStopLoss
	}
	return nil
}

// positive rejects NaN and infinities as well as non-positive values
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
