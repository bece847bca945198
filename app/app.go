// Package app runs seqctl commands: scripted list operations and sorts.
package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bradenaw/juniper/xslices"
	"github.com/sirupsen/logrus"

	"hop.computer/seqs/config"
	"hop.computer/seqs/flags"
	"hop.computer/seqs/pkg/sorting"
	"hop.computer/seqs/script"
)

// ErrBadPerson is returned when a people sort value is not First:Last.
var ErrBadPerson = errors.New("person must be written First:Last")

// ErrBadNumber is returned when a numbers sort value does not parse.
var ErrBadNumber = errors.New("invalid number")

// Run executes the command in f, writing results to out.
func Run(f *flags.Flags, c *config.Config, out io.Writer) error {
	p := newPainter(out, ColorEnabled(c.Color, out), c.Separator)
	switch f.Command {
	case flags.CommandRun:
		return runScript(f.ScriptPath, c, p, out)
	case flags.CommandSort:
		return runSort(f.SortMode, f.Values, p, out)
	}
	return fmt.Errorf("%w %q", flags.ErrUnknownCommand, f.Command)
}

func runScript(path string, c *config.Config, p *painter, out io.Writer) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	log := logrus.WithField("script", path)
	log.Debugf("running %d ops on %d initial values", len(s.Ops), len(s.Initial))

	res, runErr := s.Run(log, c.ContinueOnError)
	if res != nil {
		for _, step := range res.Steps {
			fmt.Fprintln(out, p.stepLine(step))
		}
		fmt.Fprintf(out, "%s %s\n", p.paint(p.step, fmt.Sprintf("final (%d):", len(res.Final))), p.values(res.Final))
	}
	return runErr
}

func (p *painter) stepLine(step script.Step) string {
	var b strings.Builder
	b.WriteString(p.paint(p.step, strconv.Itoa(step.N)))
	b.WriteString(" ")
	b.WriteString(step.Op.String())
	if step.Err != nil {
		b.WriteString(" ")
		b.WriteString(p.paint(p.err, "error: "+step.Err.Error()))
		return b.String()
	}
	switch step.Op.Op {
	case script.OpPopFirst, script.OpPopLast, script.OpGetAt, script.OpRemoveAt:
		b.WriteString(" = ")
		b.WriteString(p.paint(p.result, step.Result))
	}
	b.WriteString(" -> ")
	b.WriteString(p.values(step.After))
	return b.String()
}

func runSort(mode string, values []string, p *painter, out io.Writer) error {
	logrus.WithFields(logrus.Fields{
		"mode":  mode,
		"count": len(values),
	}).Debug("sorting")

	var sorted []string
	switch mode {
	case flags.SortStrings:
		sorted = sorting.CaseInsensitive(values)
	case flags.SortPeople:
		people, err := parsePeople(values)
		if err != nil {
			return err
		}
		sorted = xslices.Map(sorting.People(people), formatPerson)
	case flags.SortNumbers:
		nums, err := parseNumbers(values)
		if err != nil {
			return err
		}
		sorted = xslices.Map(sorting.Selection(nums), formatNumber)
	default:
		return fmt.Errorf("%w %q", flags.ErrUnknownMode, mode)
	}
	fmt.Fprintln(out, p.values(sorted))
	return nil
}

func parsePeople(values []string) ([]sorting.Person, error) {
	people := make([]sorting.Person, len(values))
	for i, v := range values {
		first, last, ok := strings.Cut(v, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPerson, v)
		}
		people[i] = sorting.Person{First: first, Last: last}
	}
	return people, nil
}

func formatPerson(p sorting.Person) string {
	return p.First + ":" + p.Last
}

func parseNumbers(values []string) ([]float64, error) {
	nums := make([]float64, len(values))
	for i, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrBadNumber, v)
		}
		nums[i] = n
	}
	return nums, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
