package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconPlug     = "\uf1e6" // plug
	IconFile     = "\uf15c" // file-text
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconUpload   = "\uf093" // upload
	IconSave     = "\uf0c7" // floppy
	IconClock    = "\uf017" // clock
	IconCursor   = "\uf054" // chevron-right
	IconList     = "\uf03a" // list

	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked

	IconExpanded  = "\uf078" // chevron-down
	IconCollapsed = "\uf054" // chevron-right
	IconLeaf      = "\uf111" // circle
	IconSequence  = "\uf0cb" // list-ol
)

// Plain fallbacks used when icons are disabled.
const (
	PlainExpanded  = "v"
	PlainCollapsed = ">"
	PlainLeaf      = "-"
	PlainSequence  = "#"
	PlainCheck     = "ok"
	PlainX         = "x"
	PlainWarning   = "!"
	PlainInfo      = "i"
	PlainCursor    = ">"
)
