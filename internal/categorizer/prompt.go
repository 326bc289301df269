package categorizer

import (
	"fmt"
	"strings"

	"mkeller/ledgerec/internal/models"
)

// buildBatchPrompt renders the single batched classification request: the
// full category catalog to constrain the answer space, the ordered miss
// transactions keyed by 1-based ordinal, and the fixed domain rules. The
// rules are domain policy, not negotiable per call.
func buildBatchPrompt(categories []models.Category, transactions []models.Transaction) string {
	var catalog strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&catalog, "- %s: %s (%s)\n", c.Code, c.Name, c.CategoryType)
	}

	var list strings.Builder
	for i, t := range transactions {
		kind := "income"
		if t.Amount.IsNegative() {
			kind = "expense"
		}
		fmt.Fprintf(&list, "%d. [%s] %s | $%s (%s)\n",
			i+1, t.Date, t.Description, t.Amount.Abs().StringFixed(2), kind)
	}

	return fmt.Sprintf(`Categorize these bank transactions. For each transaction, determine the best category.

Available categories:
%s
Transactions to categorize:
%s
Respond with ONLY a JSON array, one object per transaction in order:
[{"id": 1, "category_code": "XXX", "confidence": "high/medium/low"}, ...]

Rules:
- Positive amounts (income) should use category "%s"
- Groceries and supermarkets = "%s"
- Restaurants/cafes/takeaway = "%s"
- Transport (rideshare, public transport, parking) = "%s"
- Software/tech (hosting, AI services, subscriptions) = "%s"
- Pharmacy/medical = "%s"
- Entertainment (museums, cinemas) = "%s"
- Phone/utilities = "%s"
- If unsure, use "%s" with low confidence`,
		catalog.String(),
		list.String(),
		models.CategoryCodeIncome,
		models.CategoryCodeGroceries,
		models.CategoryCodeDining,
		models.CategoryCodeTransport,
		models.CategoryCodeSoftware,
		models.CategoryCodePharmacy,
		models.CategoryCodeEntertainment,
		models.CategoryCodeUtilities,
		models.CategoryCodeOther)
}
