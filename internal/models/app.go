package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Messages     []Message       // Current transcript to display
	Input        textinput.Model // User input field
	Spinner      spinner.Model   // Loading indicator
	Status       string          // Status bar text
	Mood         string          // Mood reported by the last assistant turn
	Loading      bool            // A chat request is outstanding
	Width        int             // Terminal width
	Height       int             // Terminal height
	Connectivity Connectivity    // Backend reachability
	AIEnabled    bool            // Backend reports AI-backed responses
	Mode         string          // Active interaction mode
	Modes        []string        // Closed set of selectable modes
	Language     string          // Current language code (mirrors the manager)
	Started      bool            // Welcome view flipped to active transcript
	CrisisShown  bool            // Crisis affordance is visible
}
