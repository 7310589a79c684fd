package persistence

const (
	historyFile    = "messages.json"
	maxHistorySize = 200
)

// SaveHistory stores the custom toast messages typed into the demo, keeping
// only the most recent ones.
func SaveHistory(messages []string) error {
	if len(messages) > maxHistorySize {
		messages = messages[len(messages)-maxHistorySize:]
	}
	return save(historyFile, messages)
}

// LoadHistory returns saved messages oldest first. It never returns nil.
func LoadHistory() ([]string, error) {
	messages, err := load[[]string](historyFile)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []string{}
	}
	return messages, nil
}
