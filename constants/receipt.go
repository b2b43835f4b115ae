package constants

// ReceiptKind selects which receipt vocabulary and field rules apply during
// parsing. The text alone does not self-identify its format reliably, so the
// kind is supplied by whichever upload path produced the blob.
type ReceiptKind string

const (
	KindPointOfSale  ReceiptKind = "POS"
	KindHomeDelivery ReceiptKind = "HOME_DELIVERY"
)

// ReceiptKinds lists the stable kind strings for schema validation.
var ReceiptKinds = []string{string(KindPointOfSale), string(KindHomeDelivery)}

// SalesWindows holds the allowed submission windows for a daily sales entry.
var SalesWindows = []string{"3pm", "7pm", "9pm", "closing"}

// IsValidWindow reports whether w is one of the known sales windows.
func IsValidWindow(w string) bool {
	for _, v := range SalesWindows {
		if v == w {
			return true
		}
	}
	return false
}
