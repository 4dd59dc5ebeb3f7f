package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobinsights/internal/utils"
)

const bannerText = `
     ██╗ ██████╗ ██████╗ ██╗███╗   ██╗███████╗██╗ ██████╗ ██╗  ██╗████████╗███████╗
     ██║██╔═══██╗██╔══██╗██║████╗  ██║██╔════╝██║██╔════╝ ██║  ██║╚══██╔══╝██╔════╝
     ██║██║   ██║██████╔╝██║██╔██╗ ██║███████╗██║██║  ███╗███████║   ██║   ███████╗
██   ██║██║   ██║██╔══██╗██║██║╚██╗██║╚════██║██║██║   ██║██╔══██║   ██║   ╚════██║
╚█████╔╝╚██████╔╝██████╔╝██║██║ ╚████║███████║██║╚██████╔╝██║  ██║   ██║   ███████║
 ╚════╝  ╚═════╝ ╚═════╝ ╚═╝╚═╝  ╚═══╝╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚══════╝
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	steps := float32(len(chars))

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(ch))
	}
	return b.String()
}

// PrintBanner writes the application banner unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary formats a salary with comma separators and a color by band
func ColorizeSalary(salary int) string {
	formatted := utils.FormatAmount(salary)

	switch {
	case salary >= 400000:
		return pterm.Green(formatted)
	case salary >= 150000:
		return pterm.LightGreen(formatted)
	case salary >= 50000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// ColorizeRange formats a job's salary range, or "Not Available" in red
func ColorizeRange(minSalary, maxSalary string) string {
	lo, okMin := utils.SalaryAmount(minSalary)
	hi, okMax := utils.SalaryAmount(maxSalary)
	if !okMin || !okMax {
		return pterm.Red(utils.NotAvailable)
	}
	return ColorizeSalary(lo) + " - " + ColorizeSalary(hi)
}
