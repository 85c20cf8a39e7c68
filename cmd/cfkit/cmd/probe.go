package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cm"
)

var probeCmd = &cobra.Command{
	Use:   "probe [TEXT]",
	Short: "Exercise narrowing, retain counts and sample buffer readiness",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := "cfkit probe: a string long enough to live on the heap"
		if len(args) == 1 {
			text = args[0]
		}
		if err := probeNarrowing(text); err != nil {
			return err
		}
		if err := probeSampleBuf(); err != nil {
			return err
		}
		log.WithField("outstanding", lib.Outstanding()).Info("probe complete")
		return nil
	},
}

func probeNarrowing(text string) error {
	s, err := cf.NewString(text)
	if err != nil {
		return fmt.Errorf("create string: %w", err)
	}
	defer s.Release()
	n, err := cf.NewNumberInt64(42)
	if err != nil {
		return fmt.Errorf("create number: %w", err)
	}
	defer n.Release()

	for _, obj := range []cf.Type{s.Get().Type, n.Get().Type} {
		_, isString := obj.TryAsString()
		_, isNumber := obj.TryAsNumber()
		log.WithFields(log.Fields{
			"type":     cf.TypeIDDescription(obj.TypeID()),
			"retains":  obj.RetainCount(),
			"tagged":   obj.IsTaggedPtr(),
			"isString": isString,
			"isNumber": isNumber,
		}).Info(obj.Description())
	}

	before := s.Get().RetainCount()
	extra := s.Retained()
	during := s.Get().RetainCount()
	extra.Release()
	log.WithFields(log.Fields{
		"before": before,
		"during": during,
		"after":  s.Get().RetainCount(),
	}).Info("retain then release")
	return nil
}

func probeSampleBuf() error {
	buf, err := cm.NewSampleBuf(nil, false, 0, nil, nil)
	if err != nil {
		return fmt.Errorf("create sample buffer: %w", err)
	}
	defer buf.Release()

	sb := buf.Get()
	log.WithField("ready", sb.DataIsReady()).Info("sample buffer created")
	if err := sb.SetDataReady(); err != nil {
		return fmt.Errorf("set data ready: %w", err)
	}
	log.WithField("ready", sb.DataIsReady()).Info("sample buffer marked ready")
	return nil
}
