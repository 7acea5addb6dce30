// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// vmtrace is a small driver over the assembler (pkg/assembly) and
// execution engine (pkg/vm) built against a handful of named, built-in
// scenarios, standing in for the source-text tokenizer/parser and the
// structural program decoder, both of which are out of scope for this
// module (spec.md §1). It exists to exercise the two pipelines
// end-to-end.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackzkvm/corevm/pkg/assembly/sema"
	"github.com/stackzkvm/corevm/pkg/util/source"
	"github.com/stackzkvm/corevm/pkg/vm/ops"
	"github.com/stackzkvm/corevm/pkg/vm/process"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vmtrace",
	Short: "Driver for the stack-based zero-knowledge VM assembler and execution engine.",
}

func init() {
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(executeCmd)

	executeCmd.Flags().Uint64("max-cycles", 0, "Maximum permitted clock (0 = unbounded)")
	executeCmd.Flags().Bool("interactive", false, "Single-step through the trace, one cycle per keypress")
}

var assembleCmd = &cobra.Command{
	Use:   "assemble <scenario>",
	Short: "Run the module assembler (C1-C3) over a named built-in scenario and print its diagnostics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := findAssembleScenario(args[0])
		if err != nil {
			return err
		}

		src := source.NewSourceFile(scenario.name, []byte{})
		moduleSpan := source.NewSpan(0, 1)

		module, diags, analyzeErr := sema.Analyze(
			src, scenario.kind, scenario.path, moduleSpan, scenario.forms, scenario.warningsAsErrors,
		)

		for _, d := range diags {
			logDiagnostic(d)
		}

		if analyzeErr != nil {
			log.Errorf("analysis of %q failed with %d diagnostic(s)", scenario.path, len(diags))
			return analyzeErr
		}

		log.Infof("analysis of %q succeeded: kind=%s procedures=%d imports=%d",
			module.Path, module.Kind, len(module.Procedures), len(module.Imports))

		for _, export := range module.Procedures {
			fmt.Printf("  %s (%s)\n", export.Name(), export.Visibility())
		}

		return nil
	},
}

func logDiagnostic(d *sema.Diagnostic) {
	fields := log.Fields{"kind": d.Kind.String(), "span": fmt.Sprintf("%d:%d", d.Span.Start(), d.Span.End())}

	if d.Severity == sema.SeverityError {
		log.WithFields(fields).Error(d.Message)
	} else {
		log.WithFields(fields).Warn(d.Message)
	}
}

var executeCmd = &cobra.Command{
	Use:   "execute <scenario>",
	Short: "Drive the operation dispatcher (C5) over a named built-in operation sequence and print its trace.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := findExecuteScenario(args[0])
		if err != nil {
			return err
		}

		maxCycles, _ := cmd.Flags().GetUint64("max-cycles")
		interactive, _ := cmd.Flags().GetBool("interactive")

		proc := process.New(maxCycles)

		for i, operation := range scenario.ops {
			if err := ops.Execute(proc, operation, scenario.host); err != nil {
				log.Errorf("cycle %d: %v", i, err)
				printTrace(proc)

				return err
			}

			if interactive {
				stepInteractive(proc)
			}
		}

		log.Infof("execution of %q completed: %d cycle(s)", scenario.name, proc.Clock())
		printTrace(proc)

		return nil
	},
}

func printTrace(p *process.Process) {
	for _, row := range p.Decoder.Rows() {
		fmt.Printf("  [%4d] %-12s top=%s\n", row.Clock, row.Operation, row.StackTop[0].String())
	}
}

// stepInteractive pauses after each cycle, putting the terminal into raw
// mode and waiting for a keypress before continuing.
func stepInteractive(p *process.Process) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state) //nolint:errcheck

	fmt.Print("-- press any key to step --\r\n")

	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
}
