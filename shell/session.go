package shell

import (
	"io"

	"github.com/hqdem/gatesynth/design"
	"github.com/hqdem/gatesynth/equiv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "shell")

// Session holds the state one shell run — interactive or scripted —
// carries across verbs: the design currently loaded (nil until a
// read_* verb or new_design runs), the equivalence checker lec
// delegates to, the configured GraphML frontend, and where command
// output goes.
type Session struct {
	Current *design.Design
	Checker equiv.Checker
	GraphML FrontendReader
	Config  Config

	Out io.Writer
}

// NewSession builds a Session with the default in-tree collaborators:
// SimChecker for lec, GraphMLFrontend for read_graphml.
func NewSession(out io.Writer) *Session {
	return &Session{
		Checker: equiv.NewSimChecker(),
		GraphML: GraphMLFrontend{},
		Out:     out,
	}
}

func (s *Session) requireDesign() error {
	if s.Current == nil {
		return ErrNoDesign
	}
	return nil
}

func (s *Session) subnet(name string) (*design.Design, string, error) {
	if err := s.requireDesign(); err != nil {
		return nil, "", err
	}
	if _, ok := s.Current.Subnets[name]; !ok {
		return nil, "", errors.Wrapf(ErrUnknownSubnet, "%q", name)
	}
	return s.Current, name, nil
}
