package content

import (
	"errors"
	"testing"

	"github.com/friskycodeur/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryValidates(t *testing.T) {
	require.NoError(t, Validate())

	for _, section := range Sections() {
		for i, item := range section.Items {
			assert.NoError(t, item.Validate(), "%s[%d] %q", section.Collection, i, item.Title)
		}
	}
}

func TestRegistryShape(t *testing.T) {
	assert.Len(t, Experiences(), 2)
	assert.Len(t, Projects(), 4)

	assert.Equal(t, "Senior Software Engineer", Experiences()[0].Title)
	assert.Equal(t, "🏗️", Experiences()[0].Icon)
	assert.Equal(t, "Multilingual PDF Export Engine", Projects()[3].Title)
	assert.Empty(t, Projects()[0].Icon)
}

func TestRegistryIsImmutable(t *testing.T) {
	first := Experiences()
	first[0].Title = "changed"
	first[0].Details[0] = "changed"

	again := Experiences()
	assert.Equal(t, "Senior Software Engineer", again[0].Title)
	assert.Equal(t, "Owned multiple Java & Spring Boot microservices in production", again[0].Details[0])

	p := Profile()
	p.Links[0].Href = "changed"
	assert.NotEqual(t, "changed", Profile().Links[0].Href)
}

func TestSectionsOrder(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "Experience", sections[0].Name)
	assert.Equal(t, "Projects", sections[1].Name)
	assert.Equal(t, Projects(), sections[1].Items)
}

func TestLookup(t *testing.T) {
	items, err := Lookup("Projects")
	require.NoError(t, err)
	assert.Len(t, items, 4)

	items, err = Lookup("exp")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = Lookup("education")
	assert.ErrorIs(t, err, domain.ErrUnknownSection)
}

func TestWithResume(t *testing.T) {
	p := WithResume(Profile(), "/tmp/cv.pdf")

	for _, l := range p.Links {
		if l.Kind == domain.LinkDocument {
			assert.Equal(t, "/tmp/cv.pdf", l.Href)
		}
	}
	assert.Equal(t, "Prateek_Maheshwari_Resume.pdf", Profile().Links[2].Href, "registry must be untouched")
	assert.Equal(t, Profile(), WithResume(Profile(), ""))
}

func TestValidateCollectionsLocatesDefects(t *testing.T) {
	err := validateCollections(map[string][]domain.DetailItem{
		CollectionExperience: {{Title: "ok", Details: []string{"a"}}},
		CollectionProjects: {
			{Title: "ok", Details: []string{"a"}},
			{Title: "", Details: []string{"a", "a"}},
		},
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.ErrorIs(t, err, domain.ErrDuplicateDetail)
	assert.Contains(t, err.Error(), "projects[1] title")
	assert.Contains(t, err.Error(), "projects[1] details[1]")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, CollectionProjects, verr.Collection)
	assert.Equal(t, 1, verr.Index)
}
