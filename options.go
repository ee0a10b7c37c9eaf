package dictmap

import (
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/errors"
)

// config holds the inputs and behavior of one run.
type config struct {
	umlPath             string
	previousPath        string
	terminologyPath     string
	apiPath             string
	apiRoot             string
	cardinalityPath     string
	cardinalityRequired bool
	inherit             bool
	alignerOptions      []aligner.Option
	differOptions       []differ.Option
}

func defaultConfig() *config {
	return &config{
		umlPath:         constants.DefaultUMLFile,
		terminologyPath: constants.DefaultTerminologyFile,
		apiPath:         constants.DefaultAPIFile,
		apiRoot:         constants.DefaultAPIRoot,
		cardinalityPath: constants.DefaultCardinalityFile,
		inherit:         true,
	}
}

// Option is a function that configures a Dictmap instance
type Option func(*config) error

// WithUML configures the structural model (XMI) of the current release
func WithUML(path string) Option {
	return func(c *config) error {
		c.umlPath = path
		return nil
	}
}

// WithPrevious configures the structural model of the previous release,
// required by Diff
func WithPrevious(path string) Option {
	return func(c *config) error {
		c.previousPath = path
		return nil
	}
}

// WithTerminology configures the terminology table (CSV)
func WithTerminology(path string) Option {
	return func(c *config) error {
		c.terminologyPath = path
		return nil
	}
}

// WithAPI configures the wire-schema document
func WithAPI(path string) Option {
	return func(c *config) error {
		c.apiPath = path
		return nil
	}
}

// WithAPIRoot configures the schema key the wire-schema walk starts from
func WithAPIRoot(root string) Option {
	return func(c *config) error {
		if root == "" {
			return errors.NewValidationError("api_root", root, "cannot be empty")
		}
		c.apiRoot = root
		return nil
	}
}

// WithCardinalities configures the cardinality override table. When required
// is false a missing file is skipped.
func WithCardinalities(path string, required bool) Option {
	return func(c *config) error {
		c.cardinalityPath = path
		c.cardinalityRequired = required
		return nil
	}
}

// WithInheritance configures whether descendants receive the attributes of
// their ancestors before the dictionary and structure are rendered
func WithInheritance(enabled bool) Option {
	return func(c *config) error {
		c.inherit = enabled
		return nil
	}
}

// WithAlignerOptions passes options through to the cross-source aligner
func WithAlignerOptions(opts ...aligner.Option) Option {
	return func(c *config) error {
		c.alignerOptions = append(c.alignerOptions, opts...)
		return nil
	}
}

// WithDifferOptions passes options through to the release differ
func WithDifferOptions(opts ...differ.Option) Option {
	return func(c *config) error {
		c.differOptions = append(c.differOptions, opts...)
		return nil
	}
}
