package tutor

import (
	"strings"
	"text/template"
)

var promptTmpl = template.Must(template.New("prompt").Parse(`You are a physics tutor explaining Faraday's Law of Induction to a student looking at a simulation.

Current Simulation State:
- Induced EMF: {{printf "%.2f" .EMF}} Volts (Arbitrary Units)
- Magnetic Flux: {{printf "%.2f" .Flux}} Weber (Arbitrary Units)
- Magnet Velocity: {{printf "%.2f" .Velocity}} units/s
- Number of Coil Turns: {{.Turns}}

Based on this specific moment, explain what is happening.
- If EMF is near zero but Flux is high, explain why (rate of change is zero).
- If EMF is high, explain the relationship between speed, turns, and flux change.
- Keep it brief (max 3 sentences), encouraging, and educational.
- Do not use LaTeX formatting, just plain text.
`))

func Prompt(req Request) (string, error) {
	var b strings.Builder
	if err := promptTmpl.Execute(&b, req); err != nil {
		return "", err
	}
	return b.String(), nil
}
