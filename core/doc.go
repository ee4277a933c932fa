/* Copyright 2026 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core provides the state tracking for a naive
// string-matching automaton.
//
// The automaton for a pattern of length N has states 0 through N.
// State i means "the first i characters of the pattern match the
// last i characters consumed so far".  State N is the accepting
// state.
//
// The primary type is Tracker, and the primary method is Advance().
// A Tracker holds a pattern and the set of states that are currently
// alive.  Each call to Advance consumes one character.  State 0 is
// always alive after a step (we can always start matching over), and
// state i+1 is alive if state i was alive and the character matches
// the pattern at position i.
//
// Note that this is not the minimal KMP automaton.  There are no
// failure links.  Instead, every partial match is tracked in
// parallel, so a self-similar pattern like "aaa" can have several
// alive states at once.  Also, nothing transitions out of the
// accepting state.
//
// Machine() describes the same automaton as data (nodes and
// branches), which is what the exporters in package tools consume.
package core
