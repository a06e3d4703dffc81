package services

import (
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/logger"
)

// soundCues surfaces the session's audio cues in the debug log. The server
// has no speaker; clients replay the cues from the session view, and the log
// keeps them visible while debugging a run.
type soundCues struct {
	log *logger.Logger
}

func newSoundCues() game.Sounds {
	return soundCues{log: logger.Default().WithPrefix("sound")}
}

func (c soundCues) Success()     { c.log.Debug("cue: success") }
func (c soundCues) Error()       { c.log.Debug("cue: error") }
func (c soundCues) Click()       { c.log.Debug("cue: click") }
func (c soundCues) Hint()        { c.log.Debug("cue: hint") }
func (c soundCues) NewRound()    { c.log.Debug("cue: new round") }
func (c soundCues) Points(p int) { c.log.Debug("cue: points +%d", p) }
func (c soundCues) Complete()    { c.log.Debug("cue: game complete") }
func (c soundCues) Tick()        { c.log.Debug("cue: tick") }
func (c soundCues) Warning()     { c.log.Debug("cue: warning") }
