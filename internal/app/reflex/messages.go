package reflex

import (
	"fmt"
	"strconv"
)

const PerfectMessage = "Tamat! Selamat! Sehat?"

// Shown when Stop is pressed before the countdown expired.
var ImpatienceMessages = [...]string{
	"Lo gak sabaran apa gimana?",
	"Apasi masalah di hidup lo?",
	"Santai bro, santai",
	"Sambil merem ya mata lo?",
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'g', 6, 64)
}

func randomizedMessage(delaySeconds float64) string {
	return fmt.Sprintf("Waktu diacak: %s detik", formatSeconds(delaySeconds))
}

func deviationMessage(differenceSeconds float64) string {
	return fmt.Sprintf("Biasa aja, waktu reflek: %s detik", formatSeconds(differenceSeconds))
}
