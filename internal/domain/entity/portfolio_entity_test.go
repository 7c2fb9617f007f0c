package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTechnologies(t *testing.T) {
	assert.Equal(t, `["Go","PostgreSQL"]`, EncodeTechnologies([]string{"Go", "PostgreSQL"}))
	assert.Equal(t, `[]`, EncodeTechnologies(nil))
	assert.Equal(t, `[]`, EncodeTechnologies([]string{}))
}

func TestDecodeTechnologies(t *testing.T) {
	assert.Equal(t, []string{"Go", "PostgreSQL"}, DecodeTechnologies(`["Go","PostgreSQL"]`))
	assert.Equal(t, []string{}, DecodeTechnologies(""))
	assert.Equal(t, []string{}, DecodeTechnologies("null"))
	assert.Equal(t, []string{}, DecodeTechnologies("{broken"))
	assert.Equal(t, []string{}, DecodeTechnologies(`"not-an-array"`))
}

func TestUpdatePortfolioItemAssignments(t *testing.T) {
	title := "New Title"
	featured := true
	techs := []string{"Go"}

	u := UpdatePortfolioItemInput{
		Title:        &title,
		Featured:     &featured,
		Technologies: &techs,
	}
	cols, vals := u.Assignments()

	assert.Equal(t, []string{"title", "technologies", "featured"}, cols)
	assert.Equal(t, []any{"New Title", `["Go"]`, true}, vals)
}

func TestUpdatePortfolioItemAssignmentsEmpty(t *testing.T) {
	var u UpdatePortfolioItemInput
	cols, vals := u.Assignments()
	assert.Empty(t, cols)
	assert.Empty(t, vals)
}
