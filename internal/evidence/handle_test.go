package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGitHubHandle(t *testing.T) {
	cases := map[string]string{
		"octocat":                          "octocat",
		"  OctoCat  ":                      "octocat",
		"@octocat":                         "octocat",
		"https://github.com/OctoCat":       "octocat",
		"http://www.github.com/octo-cat/":  "octo-cat",
		"github.com/octo_cat":              "octo_cat",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeGitHubHandle(input), "input %q", input)
	}
}

func TestNormalizeKaggleHandle(t *testing.T) {
	assert.Equal(t, "grandmaster42", NormalizeKaggleHandle("https://www.kaggle.com/GrandMaster42"))
	assert.Equal(t, "grandmaster42", NormalizeKaggleHandle("grandmaster42"))
}

func TestNormalizeLinkedInHandle(t *testing.T) {
	assert.Equal(t, "jane-doe", NormalizeLinkedInHandle("https://linkedin.com/in/Jane-Doe"))
	assert.Equal(t, "jane-doe", NormalizeLinkedInHandle("www.linkedin.com/in/jane-doe/"))
}
