package app

type refreshState int

const (
	stateIdle refreshState = iota
	stateRefreshing
)

func (s refreshState) String() string {
	if s == stateRefreshing {
		return "refreshing"
	}
	return "idle"
}

type row struct {
	Label string
}

func (r row) Title() string       { return r.Label }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.Label }

type refreshResult struct {
	items []string
}
