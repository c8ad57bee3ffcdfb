// Package content is the compiled-in content registry: the profile, page
// metadata, and the experience and project collections. Nothing in this
// package changes after init; every accessor returns a copy.
package content

import (
	"errors"
	"strings"

	"github.com/friskycodeur/folio/internal/domain"
)

// Collection names, used in validation errors and on the command line
const (
	CollectionExperience = "experience"
	CollectionProjects   = "projects"
)

// Section is a titled, ordered collection of cards on the page
type Section struct {
	Name       string
	Collection string
	Items      []domain.DetailItem
}

var metadata = domain.Metadata{
	Title:       "Prateek Maheshwari | Senior Backend Engineer",
	Description: "Senior Backend Engineer specializing in Java, Spring Boot, distributed systems, and performance optimization.",
}

var profile = domain.Profile{
	Name:     "Prateek Maheshwari",
	Headline: "Senior Backend Engineer · Java · Spring Boot",
	Summary: "Senior backend engineer with **4+ years** of experience designing and scaling " +
		"production-grade systems with a focus on performance and maintainability.",
	Links: []domain.Link{
		{Kind: domain.LinkLinkedIn, Label: "LinkedIn", Href: "https://www.linkedin.com/in/friskycodeur"},
		{Kind: domain.LinkGitHub, Label: "GitHub", Href: "https://github.com/friskycodeur"},
		{Kind: domain.LinkDocument, Label: "Resume", Href: "Prateek_Maheshwari_Resume.pdf"},
		{Kind: domain.LinkEmail, Label: "Contact", Href: "friskycodeur@gmail.com"},
	},
}

var experiences = []domain.DetailItem{
	{
		Icon:     "🏗️",
		Title:    "Senior Software Engineer",
		Subtitle: "Bounteous · Mar 2025 – Present",
		Metrics:  "10+ services · ~33% infra cost reduction · ~60% latency improvement",
		Details: []string{
			"Owned multiple Java & Spring Boot microservices in production",
			"Led migration of 10+ services from on-prem storage to AWS S3",
			"Designed event-driven pipelines using Lambda, DynamoDB, and S3",
			"Reduced report generation latency by ~60%",
			"Implemented dynamic document processing pipelines",
			"Collaborated closely with product and QA on reliability-critical features",
		},
	},
	{
		Icon:     "📈",
		Title:    "Software Engineer",
		Subtitle: "RxLogix · Feb 2022 – Nov 2024",
		Metrics:  "~25% backend performance improvement",
		Details: []string{
			"Designed and maintained high-traffic REST APIs",
			"Improved performance via SQL tuning and indexing",
			"Introduced Redis caching for hot API paths",
			"Re-architected static auto-narratives into template-driven system",
			"Reduced narrative update time by ~50%",
			"Worked on correctness-critical healthcare workflows",
		},
	},
}

var projects = []domain.DetailItem{
	{
		Title:    "Document Management & Workflow Platform",
		Subtitle: "Java · Spring Boot · AWS S3 · Lambda",
		Metrics:  "10+ services · Event-driven · Cloud-native",
		Details: []string{
			"Designed backend services for document ingestion and workflow automation",
			"Migrated on-prem storage to AWS S3 for scalability and durability",
			"Introduced event-driven processing to reduce operational overhead",
		},
	},
	{
		Title:    "High-Performance REST API Platform",
		Subtitle: "Spring Boot · PostgreSQL · Redis",
		Metrics:  "~25% P95 latency improvement",
		Details: []string{
			"Built high-traffic REST APIs used by enterprise customers",
			"Optimized SQL queries and indexing strategies",
			"Introduced Redis caching for hot paths",
		},
	},
	{
		Title:    "Template-Driven Auto Narrative System",
		Subtitle: "Java · Spring Boot · Templates",
		Metrics:  "~50% faster updates",
		Details: []string{
			"Refactored static narrative logic into a template-driven system",
			"Improved maintainability and reduced business turnaround time",
			"Separated business logic from presentation",
		},
	},
	{
		Title:    "Multilingual PDF Export Engine",
		Subtitle: "Java · Spring Boot · iTextPDF",
		Metrics:  "~30% export performance improvement",
		Details: []string{
			"Implemented multi-font Unicode support",
			"Improved PDF export reliability for global users",
			"Optimized export pipeline for performance",
		},
	},
}

// Experiences returns the work experience entries in display order
func Experiences() []domain.DetailItem {
	return cloneAll(experiences)
}

// Projects returns the project entries in display order
func Projects() []domain.DetailItem {
	return cloneAll(projects)
}

// Sections returns the card sections in page order
func Sections() []Section {
	return []Section{
		{Name: "Experience", Collection: CollectionExperience, Items: Experiences()},
		{Name: "Projects", Collection: CollectionProjects, Items: Projects()},
	}
}

// Lookup returns the collection by its command-line name
func Lookup(collection string) ([]domain.DetailItem, error) {
	switch strings.ToLower(strings.TrimSpace(collection)) {
	case CollectionExperience, "experiences", "exp":
		return Experiences(), nil
	case CollectionProjects, "project":
		return Projects(), nil
	default:
		return nil, &domain.ValidationError{Index: -1, Field: collection, Err: domain.ErrUnknownSection}
	}
}

// Profile returns the hero content
func Profile() domain.Profile {
	p := profile
	p.Links = append([]domain.Link(nil), profile.Links...)
	return p
}

// WithResume returns p with its document link pointed at path.
// An empty path leaves p untouched.
func WithResume(p domain.Profile, path string) domain.Profile {
	if path == "" {
		return p
	}
	links := make([]domain.Link, len(p.Links))
	for i, l := range p.Links {
		if l.Kind == domain.LinkDocument {
			l.Href = path
		}
		links[i] = l
	}
	p.Links = links
	return p
}

// Metadata returns the page title and description
func Metadata() domain.Metadata {
	return metadata
}

// Validate checks every registry entry against the DetailItem schema
func Validate() error {
	return validateCollections(map[string][]domain.DetailItem{
		CollectionExperience: experiences,
		CollectionProjects:   projects,
	})
}

func validateCollections(collections map[string][]domain.DetailItem) error {
	var errs []error
	for _, name := range []string{CollectionExperience, CollectionProjects} {
		errs = append(errs, validateCollection(name, collections[name])...)
	}
	return errors.Join(errs...)
}

func validateCollection(name string, items []domain.DetailItem) []error {
	var errs []error
	for i, item := range items {
		err := item.Validate()
		if err == nil {
			continue
		}
		for _, e := range unjoin(err) {
			var verr *domain.ValidationError
			if errors.As(e, &verr) {
				errs = append(errs, verr.At(name, i))
				continue
			}
			errs = append(errs, e)
		}
	}
	return errs
}

// unjoin splits an errors.Join result back into its parts
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func cloneAll(items []domain.DetailItem) []domain.DetailItem {
	out := make([]domain.DetailItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
