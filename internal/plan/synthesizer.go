package plan

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"strictjson-generator/internal/common"
	"strictjson-generator/internal/diagnostic"
	"strictjson-generator/internal/match"
	"strictjson-generator/internal/schema"
)

// Diagnostic codes reported by SynthesizeSet, in addition to the schema
// validation codes.
const (
	CodeUnresolvedNamed = "UNRESOLVED_NAMED"
	CodeSimilarFields   = "SIMILAR_FIELDS"
)

// suggestion tuning for unresolved record names.
const (
	suggestMinScore = 0.6
	suggestLimit    = 3
)

// Config holds configuration for synthesis.
type Config struct {
	// RuntimePkg is the package name generated code uses for the runtime.
	RuntimePkg string
	// DeserializerSuffix is appended to a record name to name its
	// deserializer type.
	DeserializerSuffix string
	// Messages are the literal failure messages.
	Messages Messages
}

// DefaultConfig returns the default synthesis configuration.
func DefaultConfig() Config {
	return Config{
		RuntimePkg:         "jsonrt",
		DeserializerSuffix: "JSONDeserializer",
		Messages:           DefaultMessages(),
	}
}

// Synthesizer computes parse plans from schemas.
type Synthesizer struct {
	config Config
	cache  *Cache
	log    *logrus.Entry
}

// NewSynthesizer creates a Synthesizer. A nil log uses the standard logger.
func NewSynthesizer(config Config, log *logrus.Entry) *Synthesizer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Synthesizer{
		config: config,
		cache:  NewCache(),
		log:    log.WithField("component", "plan"),
	}
}

// Synthesize computes the plan of one schema with the default configuration.
func Synthesize(s schema.Schema) (*ParsePlan, error) {
	return NewSynthesizer(DefaultConfig(), nil).Synthesize(s)
}

// Synthesize computes the plan of s. It fails if s does not validate.
func (sy *Synthesizer) Synthesize(s schema.Schema) (*ParsePlan, error) {
	if p, ok := sy.cache.Get(s); ok {
		return p, nil
	}

	diags := schema.Validate(s)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", s.Name(), err)
	}

	p := sy.build(s)
	sy.cache.Put(s, p)

	sy.log.WithFields(logrus.Fields{
		"type":   s.Name(),
		"fields": s.Len(),
	}).Debug("synthesized parse plan")

	return p, nil
}

// SynthesizeSet computes the plans of every schema in set. Schemas that
// fail validation are reported and left out of the result.
func (sy *Synthesizer) SynthesizeSet(set *schema.Set) (*SetPlan, diagnostic.Diagnostics) {
	sp := &SetPlan{Package: set.Package()}

	var diags diagnostic.Diagnostics

	for _, s := range set.Schemas() {
		sd := schema.Validate(s)
		sd.Merge(sy.checkReferences(set, s))
		sd.Merge(checkSimilarKeys(s))
		diags.Merge(sd)

		if sd.HasErrors() {
			continue
		}

		p, err := sy.Synthesize(s)
		if err != nil {
			// Validated above; only reachable if validation and synthesis disagree.
			diags.AddError("SYNTHESIS_FAILED", err.Error(), s.Name(), "")
			continue
		}

		sp.Plans = append(sp.Plans, p)
	}

	sp.Diagnostics = diags

	return sp, diags
}

// build assumes s is valid.
func (sy *Synthesizer) build(s schema.Schema) *ParsePlan {
	p := &ParsePlan{
		Record:       s.Name(),
		Deserializer: sy.deserializerName(s.Name()),
		RuntimePkg:   sy.config.RuntimePkg,
		Messages:     sy.config.Messages,
		Fingerprint:  s.Fingerprint(),
		Fields:       make([]FieldAction, 0, s.Len()),
		Required:     make([]string, 0, s.Len()),
	}

	used := make(map[string]bool, 2*s.Len())

	for _, f := range s.Fields() {
		slot := uniqueLocal("f"+common.UpperFirst(f.GoName), used)

		p.Fields = append(p.Fields, FieldAction{
			Key:            f.Name,
			GoName:         f.GoName,
			Slot:           slot,
			Flag:           uniqueLocal(slot+"Parsed", used),
			Type:           f.Type,
			Parser:         sy.parserFor(f.Type),
			FailureMessage: FieldFailureMessage(f.Name),
		})
		p.Required = append(p.Required, f.Name)
	}

	return p
}

// uniqueLocal returns base, or base with the smallest numeric suffix that
// is not yet used, and marks the result used.
func uniqueLocal(base string, used map[string]bool) string {
	name := base
	for i := 2; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}

	used[name] = true

	return name
}

// parserFor selects the primitive for t from the dispatch table.
func (sy *Synthesizer) parserFor(t schema.TypeRef) Parser {
	p := Parser{
		Primitive: PrimitiveFor(t.Kind),
		GoType:    t.GoType(sy.config.RuntimePkg),
	}

	switch p.Primitive {
	case PrimitiveArray:
		elem := sy.parserFor(*t.Elem)
		p.Elem = &elem
	case PrimitiveObject:
		p.Deserializer = sy.deserializerName(t.Name)
	}

	return p
}

// deserializerName keeps the package qualifier of a qualified record name.
func (sy *Synthesizer) deserializerName(record string) string {
	return record + sy.config.DeserializerSuffix
}

// checkReferences warns about nested record types that are not part of the
// set. Qualified names live in other packages and are not checked.
func (sy *Synthesizer) checkReferences(set *schema.Set, s schema.Schema) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, f := range s.Fields() {
		for _, ref := range f.Type.NamedRefs() {
			if strings.Contains(ref, ".") {
				continue
			}

			if _, ok := set.Lookup(ref); ok {
				continue
			}

			diags.AddWarning(CodeUnresolvedNamed,
				fmt.Sprintf("record type %s is not generated in package %s; %s%s must be declared by hand",
					ref, set.Package(), ref, sy.config.DeserializerSuffix),
				s.Name(), f.Name,
				match.Suggest(ref, set.Names(), suggestMinScore, suggestLimit)...)
		}
	}

	return diags
}

// checkSimilarKeys reports JSON names that differ only by case or
// separators; both are accepted but are easy to confuse.
func checkSimilarKeys(s schema.Schema) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]string, s.Len())

	for _, f := range s.Fields() {
		norm := match.Fold(f.Name)
		if prev, ok := seen[norm]; ok && prev != f.Name {
			diags.AddInfo(CodeSimilarFields,
				fmt.Sprintf("JSON names %q and %q differ only by case or separators", prev, f.Name),
				s.Name(), f.Name)

			continue
		}

		seen[norm] = f.Name
	}

	return diags
}
