package scraper

import "strings"

// RewriteRule maps a literal substring to its replacement.
type RewriteRule struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// RuleRewriter applies an ordered rule table to URLs. Rules run exactly once
// each, in table order; a rule replaces every occurrence of its key before
// the next rule is considered. There is no loop to fixpoint: if a
// replacement value contains a later rule's key, that key is rewritten too,
// but keys introduced by later rules are left alone. Absent matches are a
// no-op.
type RuleRewriter struct {
	rules []RewriteRule
}

// NewRuleRewriter builds a rewriter over the given ordered rules.
func NewRuleRewriter(rules []RewriteRule) *RuleRewriter {
	return &RuleRewriter{rules: rules}
}

// Rewrite returns the URL with all rules applied. Pure, never fails.
func (r *RuleRewriter) Rewrite(url string) string {
	for _, rule := range r.rules {
		if rule.From == "" {
			continue
		}
		url = strings.ReplaceAll(url, rule.From, rule.To)
	}
	return url
}
