package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const meetingCodeLength = 10
const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateMeetingLink produces the meeting reference handed to a confirmed
// mentorship booking. The gateway is simulated, so the link is a stable
// random code rather than a real conferencing room.
func GenerateMeetingLink() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	var b strings.Builder
	for i := 0; i < meetingCodeLength; i++ {
		if i > 0 && i%3 == 0 && i < 9 {
			b.WriteByte('-')
		}
		b.WriteByte(letterBytes[seededRand.Intn(len(letterBytes))])
	}
	return fmt.Sprintf("https://meet.careerbridge.io/%s", b.String())
}
