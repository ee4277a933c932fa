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

package core

// Strides renders a Walk's strides compactly, one per line, like
//
//	a {0} -> {0,1}
//
// with a trailing " accepted" when the step completed a match.
func Strides(ss []*Stride) string {
	acc := make([]byte, 0, 32*len(ss))
	for _, s := range ss {
		acc = append(acc, s.Consumed...)
		acc = append(acc, ' ')
		acc = append(acc, s.From.String()...)
		acc = append(acc, " -> "...)
		acc = append(acc, s.To.String()...)
		if s.Accepted {
			acc = append(acc, " accepted"...)
		}
		acc = append(acc, '\n')
	}
	return string(acc)
}
