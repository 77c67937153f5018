/*
 * chessgo - a small chess engine, built for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// evalConfiguration holds the static evaluator's tunable bonuses and
// penalties, matching exactly the terms the evaluator implements:
// material + piece-square tables + phase blend + passed pawns +
// rook-on-seventh + knight/bishop development.
type evalConfiguration struct {
	UseMaterialEval        bool
	PassedPawnBaseBonus    int16
	PassedPawnAdvanceBonus int16
	RookOnSeventhBonus     int16
	UndevelopedMinorMalus  int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMaterialEval = true
	Settings.Eval.PassedPawnBaseBonus = 20
	Settings.Eval.PassedPawnAdvanceBonus = 4
	Settings.Eval.RookOnSeventhBonus = 20
	Settings.Eval.UndevelopedMinorMalus = 10
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupEval() {
}
