package ctk

import (
	"fmt"
	"regexp"
	"strings"
)

// ComponentCheck returns a Func over parsed outputs that counts, for
// every syllable and every slot in slots, values inside segments (ban)
// or outside segments (require, ban false).
func ComponentCheck(slots []Slot, segments []string, ban bool) Func {
	set := newSegmentSet(segments)
	return func(parsed string) int {
		check := 0
		for _, sigma := range strings.Fields(parsed) {
			s := ParseDotted(sigma)
			for _, slot := range slots {
				if set.Has(s.part(slot)) == ban {
					check++
				}
			}
		}
		return check
	}
}

// Phonotactic returns a Func counting non-overlapping matches of pattern
// in a surface string. A pattern that matches the empty string, such as
// "a*", is rejected with ErrEmptyMatch.
func Phonotactic(pattern string) (Func, error) {
	re, err := compileCounting("phonotactic", pattern)
	if err != nil {
		return nil, err
	}
	return func(output string) int {
		return countMatches(re, output)
	}, nil
}

// GenericDep returns a Func counting segment in the environment built by
// lenv and renv. Either or both may be nil; with both nil the bare
// segment is counted. As with Phonotactic, the combined pattern must not
// match the empty string.
func GenericDep(lenv, renv Env, segment string) (Func, error) {
	var search string
	switch {
	case lenv == nil && renv == nil:
		search = segment
	case lenv == nil:
		search = renv(segment)
	case renv == nil:
		search = lenv(segment)
	default:
		search = lenv(renv(segment))
	}
	re, err := compileCounting("dep", search)
	if err != nil {
		return nil, err
	}
	return func(output string) int {
		return countMatches(re, output)
	}, nil
}

// GenericMax returns a MaxFunc counting deletions of segment between an
// input and a candidate output. lenv and renv are optional environment
// patterns ("" for none). In the input the environment may be separated
// from the segment by spaces and tone digits, in the output by spaces
// and epenthetic C or V.
//
// With no environment match in the input there is no violation. If the
// output matches the environment as often as the input, there is none
// either; otherwise the violations are the difference between the
// segment counts of input and output, which may be negative when the
// output gained segments. An empty output is one violation. The segment
// must not match the empty string.
func GenericMax(segment, lenv, renv string) (MaxFunc, error) {
	var inParam, outParam string
	switch {
	case lenv == "" && renv == "":
		inParam, outParam = segment, segment
	case renv == "":
		inParam = fmt.Sprintf(`(%s)(\s|\d)*(%s)`, lenv, segment)
		outParam = fmt.Sprintf(`(%s)(\s|[CV])*(%s)`, lenv, segment)
	case lenv == "":
		inParam = fmt.Sprintf(`(%s)(\s|\d)*(%s)`, segment, renv)
		outParam = fmt.Sprintf(`(%s)(\s|[CV])*(%s)`, segment, renv)
	default:
		inParam = fmt.Sprintf(`(%s)(\s|\d)*(%s)(\s|\d)*(%s)`, lenv, segment, renv)
		outParam = fmt.Sprintf(`(%s)(\s|[CV])*(%s)(\s|[CV])*(%s)`, lenv, segment, renv)
	}

	segRe, err := compileCounting("max segment", segment)
	if err != nil {
		return nil, err
	}
	inRe, err := regexp.Compile(inParam)
	if err != nil {
		return nil, fmt.Errorf("max input pattern %q: %w", inParam, err)
	}
	outRe, err := regexp.Compile(outParam)
	if err != nil {
		return nil, fmt.Errorf("max output pattern %q: %w", outParam, err)
	}

	return func(input, output string) int {
		if output == "" {
			return 1
		}
		in := countMatches(inRe, input)
		if in == 0 {
			return 0
		}
		if countMatches(outRe, output) == in {
			return 0
		}
		return countMatches(segRe, input) - countMatches(segRe, output)
	}, nil
}

// compileCounting compiles a pattern whose matches are counted.
func compileCounting(kind, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s pattern %q: %w", kind, pattern, err)
	}
	if re.MatchString("") {
		return nil, fmt.Errorf("%s pattern %q: %w", kind, pattern, ErrEmptyMatch)
	}
	return re, nil
}

func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}
