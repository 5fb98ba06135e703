/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import "dirpx.dev/herrors/envx"

// Option customizes a Builder during New.
type Option func(*Builder)

// WithStackTrace sets whether outputs carry stack traces. An explicit
// setting wins over anything derived from WithEnvironment, regardless of
// option order.
func WithStackTrace(show bool) Option {
	return func(b *Builder) {
		b.cfg.ShowStackTrace = show
		b.stackSet = true
	}
}

// WithUnknownErrorMessage sets whether the derived message of generic
// fallback 500s reaches the output, or is replaced with GenericMessage.
// An explicit setting wins over anything derived from WithEnvironment,
// regardless of option order.
func WithUnknownErrorMessage(show bool) Option {
	return func(b *Builder) {
		b.cfg.ShowUnknownErrorMessage = show
		b.unknownSet = true
	}
}

// WithEnvironment derives both presentation flags from the environment:
// verbose environments (development, test) show stack traces and
// unknown-error messages, production hides both. Flags already set
// explicitly are left alone.
func WithEnvironment(env envx.Environment) Option {
	return func(b *Builder) {
		verbose := env.Verbose()
		if !b.stackSet {
			b.cfg.ShowStackTrace = verbose
		}
		if !b.unknownSet {
			b.cfg.ShowUnknownErrorMessage = verbose
		}
	}
}

// WithConfig replaces both presentation flags at once and marks them
// explicitly set.
func WithConfig(cfg Config) Option {
	return func(b *Builder) {
		b.cfg = cfg
		b.stackSet = true
		b.unknownSet = true
	}
}

// WithClassifier registers a classifier, equivalent to AddClassifier.
func WithClassifier(fn Classifier) Option {
	return func(b *Builder) {
		b.AddClassifier(fn)
	}
}

// WithObserver registers an unknown-error observer, equivalent to
// AddObserver.
func WithObserver(fn Observer) Option {
	return func(b *Builder) {
		b.AddObserver(fn)
	}
}

// WithTransformer registers an output transformer, equivalent to
// AddTransformer.
func WithTransformer(fn Transformer) Option {
	return func(b *Builder) {
		b.AddTransformer(fn)
	}
}
