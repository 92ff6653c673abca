// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// AlertHistory is the predicate function for alerthistory builders.
type AlertHistory func(*sql.Selector)

// AnalysisRun is the predicate function for analysisrun builders.
type AnalysisRun func(*sql.Selector)

// CheckRun is the predicate function for checkrun builders.
type CheckRun func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// IntelligenceProvider is the predicate function for intelligenceprovider builders.
type IntelligenceProvider func(*sql.Selector)

// NotificationChannel is the predicate function for notificationchannel builders.
type NotificationChannel func(*sql.Selector)

// PipelineDefinition is the predicate function for pipelinedefinition builders.
type PipelineDefinition func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// StageExecution is the predicate function for stageexecution builders.
type StageExecution func(*sql.Selector)

// StageOutput is the predicate function for stageoutput builders.
type StageOutput func(*sql.Selector)
