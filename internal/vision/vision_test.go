package vision

import (
	"strings"
	"testing"
)

const sampleBudgetJSON = `{
  "header": {"parlor_name": "Al Ain Centre, Dxb", "month_code": "2026-02", "area_manager": "Bibek"},
  "days": [
    {"day": 1, "weekday": "Sun", "budget": 2743, "ly_sales": 2338, "ly_guest_count": 84},
    {"day": 2, "weekday": "Mon", "budget": 2100, "ly_sales": null, "ly_guest_count": null}
  ],
  "totals": {"budget": 53000, "ly_sales": 53938, "ly_guest_count": 1712},
  "kpis": {"ly_atv": 31.51, "ly_auv": 19.28, "ly_cake_qty": 102, "ly_hand_pack_qty": 60}
}`

func TestDecodeBudgetSheet(t *testing.T) {
	sheet, err := DecodeBudgetSheet(sampleBudgetJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Header.ParlorName != "Al Ain Centre, Dxb" {
		t.Errorf("parlor name: got %q", sheet.Header.ParlorName)
	}
	if len(sheet.Days) != 2 {
		t.Fatalf("days: got %d, want 2", len(sheet.Days))
	}
	if sheet.Days[0].Budget == nil || *sheet.Days[0].Budget != 2743 {
		t.Errorf("day 1 budget: got %v", sheet.Days[0].Budget)
	}
	if sheet.Days[1].LYSales != nil {
		t.Errorf("day 2 LY sales: got %v, want nil from null cell", *sheet.Days[1].LYSales)
	}
}

func TestDecodeBudgetSheet_MarkdownFenced(t *testing.T) {
	raw := "```json\n" + sampleBudgetJSON + "\n```"
	if _, err := DecodeBudgetSheet(raw); err != nil {
		t.Fatalf("fenced JSON should decode: %v", err)
	}
}

func TestDecodeBudgetSheet_SynonymAndUnknownKeys(t *testing.T) {
	raw := strings.Replace(sampleBudgetJSON, `"days"`, `"daily_data"`, 1)
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "}") + `, "weekly": {"week_01": null}}`
	sheet, err := DecodeBudgetSheet(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Days) != 2 {
		t.Errorf("days after rename: got %d, want 2", len(sheet.Days))
	}
}

func TestDecodeBudgetSheet_DashCellsDropped(t *testing.T) {
	raw := strings.Replace(sampleBudgetJSON, `"budget": 2100`, `"budget": "-"`, 1)
	sheet, err := DecodeBudgetSheet(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Days[1].Budget != nil {
		t.Errorf("dashed budget cell: got %v, want nil", *sheet.Days[1].Budget)
	}
}

func TestDecodeBudgetSheet_RejectsMissingHeader(t *testing.T) {
	if _, err := DecodeBudgetSheet(`{"days": [{"day": 1}]}`); err == nil {
		t.Fatal("expected a schema violation for a missing header")
	}
}

func TestStripFences(t *testing.T) {
	if got := StripFences("```json\n{}\n```"); got != "{}" {
		t.Errorf("got %q, want {}", got)
	}
	if got := StripFences("{}"); got != "{}" {
		t.Errorf("unfenced input must pass through, got %q", got)
	}
}
