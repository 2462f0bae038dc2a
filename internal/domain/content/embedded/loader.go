// Package embedded provides the embedded content catalog and its loader.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml docs
var files embed.FS

const manifestName = "catalog.yaml"

// catalogDTO is the data transfer object for parsing the YAML manifest.
type catalogDTO struct {
	Page   pageDTO    `yaml:"page"`
	Guide  guideDTO   `yaml:"guide"`
	Stages []stageDTO `yaml:"stages"`
	Panels []panelDTO `yaml:"panels"`
	Topics []topicDTO `yaml:"topics"`
}

type pageDTO struct {
	Brand             string `yaml:"brand"`
	Title             string `yaml:"title"`
	Subtitle          string `yaml:"subtitle"`
	FlowHeading       string `yaml:"flow_heading"`
	FlowIntro         string `yaml:"flow_intro"`
	ComponentsHeading string `yaml:"components_heading"`
	DefaultPanel      string `yaml:"default_panel"`
	Footer            string `yaml:"footer"`
	Version           string `yaml:"version"`
	Author            string `yaml:"author"`
}

type guideDTO struct {
	Heading string `yaml:"heading"`
	Steps   []struct {
		Title  string `yaml:"title"`
		Detail string `yaml:"detail"`
	} `yaml:"steps"`
}

type stageDTO struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Summary string   `yaml:"summary"`
	Footer  string   `yaml:"footer"`
	Bullets []string `yaml:"bullets"`
}

type documentDTO struct {
	ID    string `yaml:"id"`
	Tab   string `yaml:"tab"`
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
	File  string `yaml:"file"`
}

type noticeDTO struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type panelDTO struct {
	ID          string        `yaml:"id"`
	Label       string        `yaml:"label"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Notice      *noticeDTO    `yaml:"notice"`
	DefaultTab  string        `yaml:"default_tab"`
	Documents   []documentDTO `yaml:"documents"`
}

type itemDTO struct {
	Label  string   `yaml:"label"`
	Detail string   `yaml:"detail"`
	Badges []string `yaml:"badges"`
}

type sectionDTO struct {
	Title    string    `yaml:"title"`
	Numbered bool      `yaml:"numbered"`
	Items    []itemDTO `yaml:"items"`
	TreeFile string    `yaml:"tree_file"`
}

type topicDTO struct {
	Key         string        `yaml:"key"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Sections    []sectionDTO  `yaml:"sections"`
	DefaultTab  string        `yaml:"default_tab"`
	Documents   []documentDTO `yaml:"documents"`
}

var (
	loadOnce  sync.Once
	loadedCat *content.Catalog
	loadErr   error
)

// Catalog returns the embedded catalog, loading it on first use.
func Catalog() (*content.Catalog, error) {
	loadOnce.Do(func() {
		loadedCat, loadErr = LoadCatalog(files)
	})
	return loadedCat, loadErr
}

// LoadCatalog parses catalog.yaml from fsys and reads every referenced
// document file verbatim.
func LoadCatalog(fsys fs.FS) (*content.Catalog, error) {
	raw, err := fs.ReadFile(fsys, manifestName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestName, err)
	}

	var dto catalogDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	cat, err := content.NewCatalog(parsePage(dto.Page), parseGuide(dto.Guide))
	if err != nil {
		return nil, err
	}

	for _, s := range dto.Stages {
		stage := content.Stage{
			Key:     content.TopicKey(s.Key),
			Label:   s.Label,
			Summary: s.Summary,
			Footer:  s.Footer,
			Bullets: s.Bullets,
		}
		if err := cat.AddStage(stage); err != nil {
			return nil, fmt.Errorf("failed to add stage %s: %w", s.Key, err)
		}
	}

	for _, p := range dto.Panels {
		panel, err := parsePanel(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse panel %s: %w", p.ID, err)
		}
		if err := cat.AddPanel(panel); err != nil {
			return nil, fmt.Errorf("failed to add panel %s: %w", p.ID, err)
		}
	}

	for _, t := range dto.Topics {
		topic, err := parseTopic(fsys, t)
		if err != nil {
			return nil, fmt.Errorf("failed to parse topic %s: %w", t.Key, err)
		}
		if err := cat.AddTopic(topic); err != nil {
			return nil, fmt.Errorf("failed to add topic %s: %w", t.Key, err)
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func parsePage(dto pageDTO) content.Page {
	return content.Page{
		Brand:             dto.Brand,
		Title:             dto.Title,
		Subtitle:          dto.Subtitle,
		FlowHeading:       dto.FlowHeading,
		FlowIntro:         dto.FlowIntro,
		ComponentsHeading: dto.ComponentsHeading,
		DefaultPanel:      content.PanelID(dto.DefaultPanel),
		Footer:            dto.Footer,
		Version:           dto.Version,
		Author:            dto.Author,
	}
}

func parseGuide(dto guideDTO) content.Guide {
	g := content.Guide{Heading: dto.Heading}
	for _, s := range dto.Steps {
		g.Steps = append(g.Steps, content.GuideStep{Title: s.Title, Detail: s.Detail})
	}
	return g
}

func parsePanel(fsys fs.FS, dto panelDTO) (content.Panel, error) {
	docs, err := parseDocuments(fsys, dto.Documents, dto.DefaultTab)
	if err != nil {
		return content.Panel{}, err
	}

	var notice *content.Notice
	if dto.Notice != nil {
		notice = &content.Notice{Title: dto.Notice.Title, Text: dto.Notice.Text}
	}

	return content.NewPanel(content.PanelID(dto.ID), dto.Label, dto.Title, dto.Description, notice, docs)
}

func parseTopic(fsys fs.FS, dto topicDTO) (content.Topic, error) {
	key, err := content.ParseTopicKey(dto.Key)
	if err != nil {
		return content.Topic{}, err
	}

	docs, err := parseDocuments(fsys, dto.Documents, dto.DefaultTab)
	if err != nil {
		return content.Topic{}, err
	}

	sections := make([]content.Section, 0, len(dto.Sections))
	for _, s := range dto.Sections {
		section := content.Section{Title: s.Title, Numbered: s.Numbered}
		for _, it := range s.Items {
			section.Items = append(section.Items, content.Item{Label: it.Label, Detail: it.Detail, Badges: it.Badges})
		}
		if s.TreeFile != "" {
			tree, err := fs.ReadFile(fsys, s.TreeFile)
			if err != nil {
				return content.Topic{}, fmt.Errorf("failed to read tree %s: %w", s.TreeFile, err)
			}
			section.Tree = string(tree)
		}
		sections = append(sections, section)
	}

	return content.NewTopic(key, dto.Title, dto.Description, sections, docs)
}

func parseDocuments(fsys fs.FS, dtos []documentDTO, defaultTab string) (content.DocumentSet, error) {
	docs := make([]content.Document, 0, len(dtos))
	for _, d := range dtos {
		ct, err := content.ParseContentType(d.Type)
		if err != nil {
			return content.DocumentSet{}, fmt.Errorf("document %s: %w", d.ID, err)
		}
		if d.File == "" {
			return content.DocumentSet{}, fmt.Errorf("document %s: file cannot be empty", d.ID)
		}
		text, err := fs.ReadFile(fsys, d.File)
		if err != nil {
			return content.DocumentSet{}, fmt.Errorf("failed to read document %s: %w", d.ID, err)
		}
		doc, err := content.NewDocument(d.ID, d.Tab, d.Title, string(text), ct)
		if err != nil {
			return content.DocumentSet{}, err
		}
		docs = append(docs, doc)
	}
	return content.NewDocumentSet(docs, defaultTab)
}

// Files exposes the embedded file tree, rooted at the manifest.
func Files() fs.FS {
	return files
}
