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

import "dirpx.dev/herrors/apis"

// Builder accumulates configuration and pipeline hooks before Build
// freezes them into an immutable mapper. The zero Builder is usable and
// produces the default production pipeline. Builders are not safe for
// concurrent use; build the mapper once at startup and share that.
type Builder struct {
	cfg          Config
	stackSet     bool
	unknownSet   bool
	classifiers  []Classifier
	observers    []Observer
	transformers []Transformer
}

// New returns a Builder with the given options applied.
//
// The build process runs in three steps:
//
//  1. New applies the options, establishing the configuration flags and
//     any hooks registered through options.
//  2. AddClassifier, AddObserver and AddTransformer append further hooks.
//     Registration order is preserved and becomes execution order.
//  3. Build snapshots everything into an immutable mapper and assembles
//     the built-in transformer chain from the configuration flags.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddClassifier appends a classifier to the classification stage. Nil
// classifiers are ignored.
func (b *Builder) AddClassifier(fn Classifier) *Builder {
	if fn != nil {
		b.classifiers = append(b.classifiers, fn)
	}
	return b
}

// AddObserver appends an unknown-error observer. Nil observers are
// ignored.
func (b *Builder) AddObserver(fn Observer) *Builder {
	if fn != nil {
		b.observers = append(b.observers, fn)
	}
	return b
}

// AddTransformer appends an output transformer. User transformers run
// after the built-ins, in registration order. Nil transformers are
// ignored.
func (b *Builder) AddTransformer(fn Transformer) *Builder {
	if fn != nil {
		b.transformers = append(b.transformers, fn)
	}
	return b
}

// Build freezes the builder into a mapper. The mapper holds copies of the
// hook slices, so mutating the builder afterwards, or reusing it to build
// a second mapper, does not affect mappers already built.
func (b *Builder) Build() apis.Mapper {
	return &mapper{
		cfg:         b.cfg,
		classifiers: freeze(b.classifiers),
		observers:   freeze(b.observers),
		builtins:    assembleBuiltins(b.cfg),
		chain:       freeze(b.transformers),
	}
}

// Func builds the mapper and returns its Map method as a plain function.
func (b *Builder) Func() Func {
	return b.Build().Map
}
