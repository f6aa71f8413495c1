package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniah/evaler"
)

// parseNumber accepts a plain number or an arithmetic expression like "1/64".
func parseNumber(str string) (val float64, err error) {
	// big.Rat panics on division by zero
	defer func() {
		if r := recover(); r != nil {
			val, err = 0, fmt.Errorf("evaluate %q: %v", str, r)
		}
	}()

	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return 0, errors.New("empty value")
	}

	// first try raw float conversion
	val, err = strconv.ParseFloat(str, 64)
	if err == nil {
		return checkFinite(str, val)
	}

	r, err := evaler.Eval(str)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %v", str, err)
	}
	val, _ = r.Float64()
	return checkFinite(str, val)
}

func checkFinite(str string, val float64) (float64, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("%q is not a finite number", str)
	}
	return val, nil
}
