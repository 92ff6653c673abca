// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/alerthistory"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/ent/checkrun"
	"github.com/codeready-toolchain/conductor/ent/event"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/ent/notificationchannel"
	"github.com/codeready-toolchain/conductor/ent/pipelinedefinition"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/schema"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/ent/stageoutput"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescReceivedAt is the schema descriptor for received_at field.
	alertDescReceivedAt := alertFields[10].Descriptor()
	// alert.DefaultReceivedAt holds the default value on creation for the received_at field.
	alert.DefaultReceivedAt = alertDescReceivedAt.Default.(func() time.Time)
	alerthistoryFields := schema.AlertHistory{}.Fields()
	_ = alerthistoryFields
	// alerthistoryDescCreatedAt is the schema descriptor for created_at field.
	alerthistoryDescCreatedAt := alerthistoryFields[5].Descriptor()
	// alerthistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	alerthistory.DefaultCreatedAt = alerthistoryDescCreatedAt.Default.(func() time.Time)
	analysisrunFields := schema.AnalysisRun{}.Fields()
	_ = analysisrunFields
	// analysisrunDescCreatedAt is the schema descriptor for created_at field.
	analysisrunDescCreatedAt := analysisrunFields[10].Descriptor()
	// analysisrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisrun.DefaultCreatedAt = analysisrunDescCreatedAt.Default.(func() time.Time)
	checkrunFields := schema.CheckRun{}.Fields()
	_ = checkrunFields
	// checkrunDescExecutedAt is the schema descriptor for executed_at field.
	checkrunDescExecutedAt := checkrunFields[9].Descriptor()
	// checkrun.DefaultExecutedAt holds the default value on creation for the executed_at field.
	checkrun.DefaultExecutedAt = checkrunDescExecutedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[7].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[8].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	intelligenceproviderFields := schema.IntelligenceProvider{}.Fields()
	_ = intelligenceproviderFields
	// intelligenceproviderDescIsActive is the schema descriptor for is_active field.
	intelligenceproviderDescIsActive := intelligenceproviderFields[4].Descriptor()
	// intelligenceprovider.DefaultIsActive holds the default value on creation for the is_active field.
	intelligenceprovider.DefaultIsActive = intelligenceproviderDescIsActive.Default.(bool)
	// intelligenceproviderDescCreatedAt is the schema descriptor for created_at field.
	intelligenceproviderDescCreatedAt := intelligenceproviderFields[5].Descriptor()
	// intelligenceprovider.DefaultCreatedAt holds the default value on creation for the created_at field.
	intelligenceprovider.DefaultCreatedAt = intelligenceproviderDescCreatedAt.Default.(func() time.Time)
	// intelligenceproviderDescUpdatedAt is the schema descriptor for updated_at field.
	intelligenceproviderDescUpdatedAt := intelligenceproviderFields[6].Descriptor()
	// intelligenceprovider.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	intelligenceprovider.DefaultUpdatedAt = intelligenceproviderDescUpdatedAt.Default.(func() time.Time)
	// intelligenceprovider.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	intelligenceprovider.UpdateDefaultUpdatedAt = intelligenceproviderDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationchannelFields := schema.NotificationChannel{}.Fields()
	_ = notificationchannelFields
	// notificationchannelDescIsActive is the schema descriptor for is_active field.
	notificationchannelDescIsActive := notificationchannelFields[4].Descriptor()
	// notificationchannel.DefaultIsActive holds the default value on creation for the is_active field.
	notificationchannel.DefaultIsActive = notificationchannelDescIsActive.Default.(bool)
	// notificationchannelDescCreatedAt is the schema descriptor for created_at field.
	notificationchannelDescCreatedAt := notificationchannelFields[5].Descriptor()
	// notificationchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationchannel.DefaultCreatedAt = notificationchannelDescCreatedAt.Default.(func() time.Time)
	// notificationchannelDescUpdatedAt is the schema descriptor for updated_at field.
	notificationchannelDescUpdatedAt := notificationchannelFields[6].Descriptor()
	// notificationchannel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationchannel.DefaultUpdatedAt = notificationchannelDescUpdatedAt.Default.(func() time.Time)
	// notificationchannel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationchannel.UpdateDefaultUpdatedAt = notificationchannelDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinedefinitionFields := schema.PipelineDefinition{}.Fields()
	_ = pipelinedefinitionFields
	// pipelinedefinitionDescVersion is the schema descriptor for version field.
	pipelinedefinitionDescVersion := pipelinedefinitionFields[2].Descriptor()
	// pipelinedefinition.DefaultVersion holds the default value on creation for the version field.
	pipelinedefinition.DefaultVersion = pipelinedefinitionDescVersion.Default.(int)
	// pipelinedefinition.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	pipelinedefinition.VersionValidator = pipelinedefinitionDescVersion.Validators[0].(func(int) error)
	// pipelinedefinitionDescIsActive is the schema descriptor for is_active field.
	pipelinedefinitionDescIsActive := pipelinedefinitionFields[6].Descriptor()
	// pipelinedefinition.DefaultIsActive holds the default value on creation for the is_active field.
	pipelinedefinition.DefaultIsActive = pipelinedefinitionDescIsActive.Default.(bool)
	// pipelinedefinitionDescCreatedAt is the schema descriptor for created_at field.
	pipelinedefinitionDescCreatedAt := pipelinedefinitionFields[7].Descriptor()
	// pipelinedefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinedefinition.DefaultCreatedAt = pipelinedefinitionDescCreatedAt.Default.(func() time.Time)
	// pipelinedefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinedefinitionDescUpdatedAt := pipelinedefinitionFields[8].Descriptor()
	// pipelinedefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinedefinition.DefaultUpdatedAt = pipelinedefinitionDescUpdatedAt.Default.(func() time.Time)
	// pipelinedefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinedefinition.UpdateDefaultUpdatedAt = pipelinedefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescTotalAttempts is the schema descriptor for total_attempts field.
	pipelinerunDescTotalAttempts := pipelinerunFields[11].Descriptor()
	// pipelinerun.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	pipelinerun.DefaultTotalAttempts = pipelinerunDescTotalAttempts.Default.(int)
	// pipelinerunDescMaxRetries is the schema descriptor for max_retries field.
	pipelinerunDescMaxRetries := pipelinerunFields[12].Descriptor()
	// pipelinerun.DefaultMaxRetries holds the default value on creation for the max_retries field.
	pipelinerun.DefaultMaxRetries = pipelinerunDescMaxRetries.Default.(int)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[16].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescStage is the schema descriptor for stage field.
	stageexecutionDescStage := stageexecutionFields[2].Descriptor()
	// stageexecution.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	stageexecution.StageValidator = stageexecutionDescStage.Validators[0].(func(string) error)
	// stageexecutionDescNodeID is the schema descriptor for node_id field.
	stageexecutionDescNodeID := stageexecutionFields[3].Descriptor()
	// stageexecution.DefaultNodeID holds the default value on creation for the node_id field.
	stageexecution.DefaultNodeID = stageexecutionDescNodeID.Default.(string)
	// stageexecutionDescAttempt is the schema descriptor for attempt field.
	stageexecutionDescAttempt := stageexecutionFields[4].Descriptor()
	// stageexecution.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	stageexecution.AttemptValidator = stageexecutionDescAttempt.Validators[0].(func(int) error)
	// stageexecutionDescErrorRetryable is the schema descriptor for error_retryable field.
	stageexecutionDescErrorRetryable := stageexecutionFields[13].Descriptor()
	// stageexecution.DefaultErrorRetryable holds the default value on creation for the error_retryable field.
	stageexecution.DefaultErrorRetryable = stageexecutionDescErrorRetryable.Default.(bool)
	// stageexecutionDescCreatedAt is the schema descriptor for created_at field.
	stageexecutionDescCreatedAt := stageexecutionFields[18].Descriptor()
	// stageexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageexecution.DefaultCreatedAt = stageexecutionDescCreatedAt.Default.(func() time.Time)
	stageoutputFields := schema.StageOutput{}.Fields()
	_ = stageoutputFields
	// stageoutputDescCreatedAt is the schema descriptor for created_at field.
	stageoutputDescCreatedAt := stageoutputFields[3].Descriptor()
	// stageoutput.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageoutput.DefaultCreatedAt = stageoutputDescCreatedAt.Default.(func() time.Time)
}
