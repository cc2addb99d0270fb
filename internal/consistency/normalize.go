// Package consistency compares claimed skills against technologies actually
// observed in evidence sources and resume sub-sections.
package consistency

import "strings"

// techSynonyms maps common abbreviations and product aliases to one canonical
// token. All comparisons happen on canonical tokens.
var techSynonyms = map[string]string{
	"js":                    "javascript",
	"ts":                    "typescript",
	"py":                    "python",
	"golang":                "go",
	"c++":                   "cpp",
	"node":                  "nodejs",
	"node.js":               "nodejs",
	"react.js":              "react",
	"reactjs":               "react",
	"vue.js":                "vue",
	"vuejs":                 "vue",
	"postgres":              "postgresql",
	"k8s":                   "kubernetes",
	"sklearn":               "scikit-learn",
	"tf":                    "tensorflow",
	"pt":                    "pytorch",
	"ml":                    "machine learning",
	"neural networks":       "deep learning",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
}

// NormalizeTech lowercases, trims, and resolves a technology token to its
// canonical form.
func NormalizeTech(tech string) string {
	normalized := strings.ToLower(strings.TrimSpace(tech))
	if canonical, ok := techSynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// normalizeAll maps NormalizeTech over a list, dropping empty tokens.
func normalizeAll(techs []string) []string {
	out := make([]string, 0, len(techs))
	for _, tech := range techs {
		if normalized := NormalizeTech(tech); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
