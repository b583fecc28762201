package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverySeedEntityCarriesThePrefix(t *testing.T) {
	var ids []string
	for _, p := range Projects() {
		ids = append(ids, p.ID)
	}
	for _, g := range SkillGroups() {
		ids = append(ids, g.ID)
	}
	for _, e := range Experiences() {
		ids = append(ids, e.ID)
	}
	for _, e := range Educations() {
		ids = append(ids, e.ID)
	}
	for _, c := range Certifications() {
		ids = append(ids, c.ID)
	}

	require.NotEmpty(t, ids)
	for _, id := range ids {
		assert.True(t, IsSeedID(id), "id %q must carry the seed prefix", id)
	}
}

func TestIsSeedID(t *testing.T) {
	assert.True(t, IsSeedID("seed-project-1"))
	assert.False(t, IsSeedID(""))
	assert.False(t, IsSeedID("aBcD1234"))
	assert.False(t, IsSeedID("my-seed-thing"))
}

func TestSeedCallsReturnFreshSlices(t *testing.T) {
	first := Projects()
	first[0].Title = "mutated"

	second := Projects()
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestSeedProjectsKeepDisplayOrder(t *testing.T) {
	projects := Projects()
	require.NotEmpty(t, projects)
	for i := 1; i < len(projects); i++ {
		assert.LessOrEqual(t, projects[i-1].Order, projects[i].Order)
	}
}
