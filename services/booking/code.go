package booking

import (
	"fmt"

	"coden/utils"
)

const checkInCodeAttempts = 5

// generateCheckInCode produces a short customer-facing code, collision-checked
// against all currently non-terminal bookings.
func (s *DefaultBookingService) generateCheckInCode() (string, error) {
	for i := 0; i < checkInCodeAttempts; i++ {
		suffix, err := utils.GenerateSecret(5)
		if err != nil {
			return "", fmt.Errorf("failed to generate check-in code: %w", err)
		}
		code := "CODEN" + suffix

		inUse, err := s.BookingRepo.CodeInUse(code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !inUse {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique check-in code after %d attempts", checkInCodeAttempts)
}
