package form

// Palette is the round-robin color list for select options.
var Palette = [...]string{
	"#4CAF50",
	"#FF9800",
	"#2196F3",
	"#9C27B0",
	"#F44336",
	"#607D8B",
	"#795548",
	"#FF5722",
}

// PaletteColor returns the option color for position i.
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}

// Task-list defaults.
const (
	TaskStatusNotStarted = "NOT_STARTED"
	TaskPriorityMedium   = "MEDIUM"
	TaskAssignee         = "System"
	TaskPhase            = "Default"
	TaskEstimatedHours   = 999

	// RelationshipType uses an underscore; DependencyType a hyphen.
	RelationshipType = "finish_to_start"
	DependencyType   = "finish-to-start"
)

// DefaultTaskSettings returns the settings block every task graph carries.
func DefaultTaskSettings() TaskSettings {
	return TaskSettings{
		DefaultStatus:         "not_started",
		DefaultPriority:       "low",
		AutoCalculateProgress: false,
		ShowProgressBars:      false,
	}
}

// DefaultStatusColors returns the status color scheme of task-list fields.
func DefaultStatusColors() StatusColors {
	return StatusColors{
		Completed:  "#48BB78",
		InProgress: "#ED8936",
		Blocked:    "#F56565",
		NotStarted: "#90CDF4",
	}
}

// DefaultPriorityColors returns the priority color scheme of task-list fields.
func DefaultPriorityColors() PriorityColors {
	return PriorityColors{
		Critical: "#E53E3E",
		High:     "#FF9800",
		Normal:   "#3182CE",
		Low:      "#38A169",
	}
}

// Validation bounds of number fields.
const (
	NumberMin = 0
	NumberMax = 9999
)

// Document constants.
const (
	WindowType      = "Transaction"
	MainTabID       = "MAIN_TAB"
	MainTabName     = "Main"
	MainTabDesc     = "Main form fields"
	MainTabSequence = 10

	FormatVersion = "1.1"
	SourceTag     = "csv-converter-enhanced-v1.1"
	CreatedBy     = "CSV to ADUI Converter Enhanced"
	TemplateType  = "csv-import-enhanced"

	// SequenceStep spaces field weights so fields can be inserted by hand later.
	SequenceStep = 10
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
