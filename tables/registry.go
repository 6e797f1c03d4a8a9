package tables

import (
	"sort"
)

// RuleSetRegistry holds rule sets by name
type RuleSetRegistry struct {
	sets map[string]RuleSet
}

// NewRegistry creates a new rule set registry
func NewRegistry() *RuleSetRegistry {
	return &RuleSetRegistry{
		sets: make(map[string]RuleSet),
	}
}

// Register registers a rule set under its name, replacing any earlier one
func (r *RuleSetRegistry) Register(rs RuleSet) {
	r.sets[rs.Name] = rs
}

// Get retrieves a rule set by name
func (r *RuleSetRegistry) Get(name string) (RuleSet, bool) {
	rs, ok := r.sets[name]
	return rs, ok
}

// List returns all registered rule set names, sorted
func (r *RuleSetRegistry) List() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterRuleSet registers a rule set globally
func RegisterRuleSet(rs RuleSet) {
	globalRegistry.Register(rs)
}

// GetRuleSet retrieves a rule set by name
func GetRuleSet(name string) (RuleSet, bool) {
	return globalRegistry.Get(name)
}

// ListRuleSets returns all registered rule set names
func ListRuleSets() []string {
	return globalRegistry.List()
}

func init() {
	// Register the built-in rule sets
	RegisterRuleSet(CallRules)
	RegisterRuleSet(FrnRules)
	RegisterRuleSet(LicenseeRules)
	RegisterRuleSet(ApplicationRules)
}
