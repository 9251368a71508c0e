package ai

import (
	"fmt"
	"strings"

	"github.com/zhaosongzhu/financial-app-backend/internal/domain"
	"github.com/zhaosongzhu/financial-app-backend/internal/summary"
)

// ReceiptPrompt builds the fixed extraction prompt used by the /receipt
// endpoint. The model is instructed to return strict JSON, but the gateway
// never parses the response: whatever comes back is passed through to the
// caller unchanged.
func ReceiptPrompt() string {
	var b strings.Builder

	b.WriteString("You are a receipt parser for a personal-finance app.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Read the attached receipt image.\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Output a single JSON object.\n\n")
	b.WriteString("The object must have these fields:\n")
	b.WriteString("- \"date\": string, ISO format \"YYYY-MM-DD\"\n")
	b.WriteString("- \"merchantName\": string\n")
	b.WriteString("- \"category\": string (one of the categories below)\n")
	b.WriteString("- \"amount\": number (the receipt total)\n\n")

	b.WriteString("Use ONLY the following categories:\n")
	for _, c := range domain.Categories {
		b.WriteString("  - " + c + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Rules:\n")
	b.WriteString("- If you are unsure of the category, use \"Other\".\n")
	b.WriteString("- Return ONLY valid raw JSON.\n")
	b.WriteString("- Do NOT wrap the response in code fences.\n")
	b.WriteString("- Do NOT use ```json or any Markdown.\n")
	b.WriteString("- Output must begin with \"{\" and end with \"}\".\n")

	return b.String()
}

// InsightsPrompt embeds a computed spending summary into a prompt asking the
// model for a short free-text commentary.
func InsightsPrompt(period string, total float64, categories []summary.CategoryTotal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a friendly personal-finance assistant. A user spent %.2f in total over the current %s period, broken down by category:\n\n", total, period)
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s: %.2f\n", c.Category, c.TotalAmount)
	}
	b.WriteString("\nWrite 2-3 sentences of insights about this spending. Mention the top category, and keep the tone encouraging. Respond with plain text only.")

	return b.String()
}
