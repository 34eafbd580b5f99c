// Package game provides the encounter/turn controller and its state machines.
package game

import "github.com/enetx/fsm"

// Stages of a run. The stage machine only moves forward along these edges:
//
//	roster_selection -> board_idle <-> encounter -> boss_phase -> game_over
//	                                   encounter -> game_over (team wiped)
const (
	StageRosterSelection fsm.State = "roster_selection"
	StageBoardIdle       fsm.State = "board_idle"
	StageEncounter       fsm.State = "encounter"
	StageBossPhase       fsm.State = "boss_phase"
	StageGameOver        fsm.State = "game_over"
)

// Stage machine events.
const (
	EventConfirmTeam fsm.Event = "confirm_team"
	EventDraw        fsm.Event = "draw"
	EventResolve     fsm.Event = "resolve"
	EventSummonBoss  fsm.Event = "summon_boss"
	EventFinish      fsm.Event = "finish"
)

// Phase is the progress of the current encounter.
type Phase int

const (
	// PhaseIdle - no encounter card on the board
	PhaseIdle Phase = iota
	// PhaseDrawn - card drawn, waiting for a character
	PhaseDrawn
	// PhaseCharacterSelected - character chosen, waiting for the roll (or item confirm)
	PhaseCharacterSelected
	// PhaseRolled - outcome applied, result on display
	PhaseRolled
	// PhaseResolving - cleanup scheduled
	PhaseResolving
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawn:
		return "drawn"
	case PhaseCharacterSelected:
		return "character_selected"
	case PhaseRolled:
		return "rolled"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// newStageMachine builds the run's stage machine.
func newStageMachine() *fsm.FSM {
	return fsm.New(StageRosterSelection).
		Transition(StageRosterSelection, EventConfirmTeam, StageBoardIdle).
		Transition(StageBoardIdle, EventDraw, StageEncounter).
		Transition(StageEncounter, EventResolve, StageBoardIdle).
		Transition(StageEncounter, EventSummonBoss, StageBossPhase).
		Transition(StageEncounter, EventFinish, StageGameOver).
		Transition(StageBossPhase, EventFinish, StageGameOver)
}
