package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP returns a random n-digit one-time code
func GenerateOTP(digits int) string {
	if digits <= 0 {
		digits = 4
	}
	code := make([]byte, digits)
	for i := range code {
		code[i] = byte('0' + rand.Intn(10))
	}
	return string(code)
}

// GenerateVehiclePlate returns a random Karnataka-style registration plate
func GenerateVehiclePlate() string {
	letters := func() byte { return byte('A' + rand.Intn(26)) }
	return fmt.Sprintf("KA%02d%c%c%04d", 1+rand.Intn(20), letters(), letters(), 1000+rand.Intn(9000))
}
