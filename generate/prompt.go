package generate

import (
	"fmt"
	"strings"

	"github.com/mGaurav-dev/SIH-25/core"
)

const answerPromptTemplate = `You are an expert agricultural advisor with extensive knowledge of farming practices, crops, soil management, and weather conditions.

Query: %s
Location: %s
Current Weather: %s

Relevant Knowledge Context:
%s

Instructions for your response:
1. Provide a direct, accurate, and concise answer to the farmer's specific question
2. Use the provided context knowledge to enhance your response accuracy
3. Consider the location's climate, soil conditions, and seasonal patterns
4. Factor in current weather conditions when relevant
5. Keep the response practical and actionable for farmers
6. Use simple, clear language without technical jargon
7. Provide specific numbers, quantities, or measurements when available
8. Do not use any special characters, symbols, or formatting markers
9. Keep the response between 2-4 sentences for conciseness
10. If the context doesn't contain relevant information, use your general agricultural knowledge

Response:
`

const fallbackPromptTemplate = `As an agricultural expert, provide a brief answer to: %s
Location: %s
Keep the response simple, practical, and under 3 sentences.`

// buildAnswerPrompt renders the full advisory prompt.
func buildAnswerPrompt(query, location, weather, contextBlock string) string {
	return fmt.Sprintf(answerPromptTemplate, query, location, weather, contextBlock)
}

// buildFallbackPrompt renders the stripped-down second-chance prompt.
func buildFallbackPrompt(query, location string) string {
	return fmt.Sprintf(fallbackPromptTemplate, query, location)
}

// FormatWeather renders a weather snapshot for the prompt. A nil or absent
// snapshot yields a fixed placeholder so the prompt shape never changes.
func FormatWeather(w *core.WeatherSnapshot) string {
	if w == nil || !w.Present {
		return "Weather information not available"
	}

	var parts []string
	if w.Temperature != 0 {
		parts = append(parts, fmt.Sprintf("Temperature: %.1f°C", w.Temperature))
	}
	if w.Description != "" {
		parts = append(parts, fmt.Sprintf("Conditions: %s", w.Description))
	}
	if w.Humidity != 0 {
		parts = append(parts, fmt.Sprintf("Humidity: %.0f%%", w.Humidity))
	}
	if w.WindSpeed != 0 {
		parts = append(parts, fmt.Sprintf("Wind: %.1f m/s", w.WindSpeed))
	}

	if len(parts) == 0 {
		return "Weather information not available"
	}
	return strings.Join(parts, ", ")
}
