package quest

import "fmt"

// InvalidQuestError marks a structural defect in a loaded quest: missing
// fields, an empty layer list, or a malformed layer. Fatal to that load;
// never retried automatically.
type InvalidQuestError struct {
	QuestID string
	Reason  string
}

func (e *InvalidQuestError) Error() string {
	if e.QuestID == "" {
		return fmt.Sprintf("invalid quest: %s", e.Reason)
	}
	return fmt.Sprintf("invalid quest %q: %s", e.QuestID, e.Reason)
}

// LoadFailedError marks a transport or availability failure while
// fetching a quest. Carries the offending id; the caller may retry.
type LoadFailedError struct {
	QuestID string
	Err     error
}

func (e *LoadFailedError) Error() string {
	return fmt.Sprintf("quest load failed for %q: %v", e.QuestID, e.Err)
}

func (e *LoadFailedError) Unwrap() error {
	return e.Err
}

func layerReason(index int, msg string) string {
	return fmt.Sprintf("layer %d: %s", index, msg)
}
