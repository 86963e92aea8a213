package ai

import "fmt"

// QAPrompt restricts an open-ended question to the refrigerator domain.
func QAPrompt(question string) string {
	return fmt.Sprintf("Answer this question specifically about refrigerators: %s", question)
}

// ServiceCostPrompt asks for a servicing cost estimate for a product model.
func ServiceCostPrompt(model string) string {
	return fmt.Sprintf(`Provide an estimated servicing cost for a %s refrigerator.
Consider warranty status, age, common issues, and brand reputation.`, model)
}

// MaintenancePlanPrompt asks for the best maintenance plan given the current one.
func MaintenancePlanPrompt(model, currentPlan string) string {
	return fmt.Sprintf(`A user owns a %s refrigerator and currently has the '%s' maintenance plan.
Based on cost, longevity, and energy efficiency, recommend the best maintenance plan:
- Options: Basic, Standard, or Premium.
- Ensure the suggestion benefits both the user and the company profit-wise.`, model, currentPlan)
}
