package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// background
	BgPrimary   string
	BgSecondary string

	// category indicator
	CategoryInbox    string
	CategoryWork     string
	CategoryPersonal string
	CategoryErrand   string

	// completion
	Completed string
	Open      string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
	Backdrop     string // list text behind the overlay
}
