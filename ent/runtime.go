// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/agentperformance"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/leaderelection"
	"github.com/maestro-run/maestro/ent/leaderhistory"
	"github.com/maestro-run/maestro/ent/manualtask"
	"github.com/maestro-run/maestro/ent/scalingdecision"
	"github.com/maestro-run/maestro/ent/schema"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/ent/workerevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCapabilities is the schema descriptor for capabilities field.
	agentDescCapabilities := agentFields[4].Descriptor()
	// agent.DefaultCapabilities holds the default value on creation for the capabilities field.
	agent.DefaultCapabilities = agentDescCapabilities.Default.([]string)
	// agentDescAllowDelegation is the schema descriptor for allow_delegation field.
	agentDescAllowDelegation := agentFields[8].Descriptor()
	// agent.DefaultAllowDelegation holds the default value on creation for the allow_delegation field.
	agent.DefaultAllowDelegation = agentDescAllowDelegation.Default.(bool)
	// agentDescMaxIterations is the schema descriptor for max_iterations field.
	agentDescMaxIterations := agentFields[9].Descriptor()
	// agent.DefaultMaxIterations holds the default value on creation for the max_iterations field.
	agent.DefaultMaxIterations = agentDescMaxIterations.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[11].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescLastActivityAt is the schema descriptor for last_activity_at field.
	agentDescLastActivityAt := agentFields[12].Descriptor()
	// agent.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	agent.DefaultLastActivityAt = agentDescLastActivityAt.Default.(func() time.Time)
	agentperformanceFields := schema.AgentPerformance{}.Fields()
	_ = agentperformanceFields
	// agentperformanceDescTotalExecutions is the schema descriptor for total_executions field.
	agentperformanceDescTotalExecutions := agentperformanceFields[3].Descriptor()
	// agentperformance.DefaultTotalExecutions holds the default value on creation for the total_executions field.
	agentperformance.DefaultTotalExecutions = agentperformanceDescTotalExecutions.Default.(int64)
	// agentperformanceDescSuccessfulExecutions is the schema descriptor for successful_executions field.
	agentperformanceDescSuccessfulExecutions := agentperformanceFields[4].Descriptor()
	// agentperformance.DefaultSuccessfulExecutions holds the default value on creation for the successful_executions field.
	agentperformance.DefaultSuccessfulExecutions = agentperformanceDescSuccessfulExecutions.Default.(int64)
	// agentperformanceDescFailedExecutions is the schema descriptor for failed_executions field.
	agentperformanceDescFailedExecutions := agentperformanceFields[5].Descriptor()
	// agentperformance.DefaultFailedExecutions holds the default value on creation for the failed_executions field.
	agentperformance.DefaultFailedExecutions = agentperformanceDescFailedExecutions.Default.(int64)
	// agentperformanceDescAvgLatencyMs is the schema descriptor for avg_latency_ms field.
	agentperformanceDescAvgLatencyMs := agentperformanceFields[6].Descriptor()
	// agentperformance.DefaultAvgLatencyMs holds the default value on creation for the avg_latency_ms field.
	agentperformance.DefaultAvgLatencyMs = agentperformanceDescAvgLatencyMs.Default.(float64)
	// agentperformanceDescTotalCost is the schema descriptor for total_cost field.
	agentperformanceDescTotalCost := agentperformanceFields[7].Descriptor()
	// agentperformance.DefaultTotalCost holds the default value on creation for the total_cost field.
	agentperformance.DefaultTotalCost = agentperformanceDescTotalCost.Default.(float64)
	// agentperformanceDescUpdatedAt is the schema descriptor for updated_at field.
	agentperformanceDescUpdatedAt := agentperformanceFields[8].Descriptor()
	// agentperformance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentperformance.DefaultUpdatedAt = agentperformanceDescUpdatedAt.Default.(func() time.Time)
	// agentperformance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentperformance.UpdateDefaultUpdatedAt = agentperformanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentperformancemetricFields := schema.AgentPerformanceMetric{}.Fields()
	_ = agentperformancemetricFields
	// agentperformancemetricDescRecordedAt is the schema descriptor for recorded_at field.
	agentperformancemetricDescRecordedAt := agentperformancemetricFields[5].Descriptor()
	// agentperformancemetric.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	agentperformancemetric.DefaultRecordedAt = agentperformancemetricDescRecordedAt.Default.(func() time.Time)
	errorlogFields := schema.ErrorLog{}.Fields()
	_ = errorlogFields
	// errorlogDescCreatedAt is the schema descriptor for created_at field.
	errorlogDescCreatedAt := errorlogFields[5].Descriptor()
	// errorlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	errorlog.DefaultCreatedAt = errorlogDescCreatedAt.Default.(func() time.Time)
	leaderelectionFields := schema.LeaderElection{}.Fields()
	_ = leaderelectionFields
	// leaderelectionDescTerm is the schema descriptor for term field.
	leaderelectionDescTerm := leaderelectionFields[2].Descriptor()
	// leaderelection.DefaultTerm holds the default value on creation for the term field.
	leaderelection.DefaultTerm = leaderelectionDescTerm.Default.(int64)
	// leaderelectionDescUpdatedAt is the schema descriptor for updated_at field.
	leaderelectionDescUpdatedAt := leaderelectionFields[4].Descriptor()
	// leaderelection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leaderelection.DefaultUpdatedAt = leaderelectionDescUpdatedAt.Default.(func() time.Time)
	// leaderelection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leaderelection.UpdateDefaultUpdatedAt = leaderelectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	leaderhistoryFields := schema.LeaderHistory{}.Fields()
	_ = leaderhistoryFields
	// leaderhistoryDescCreatedAt is the schema descriptor for created_at field.
	leaderhistoryDescCreatedAt := leaderhistoryFields[6].Descriptor()
	// leaderhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	leaderhistory.DefaultCreatedAt = leaderhistoryDescCreatedAt.Default.(func() time.Time)
	manualtaskFields := schema.ManualTask{}.Fields()
	_ = manualtaskFields
	// manualtaskDescPriority is the schema descriptor for priority field.
	manualtaskDescPriority := manualtaskFields[4].Descriptor()
	// manualtask.DefaultPriority holds the default value on creation for the priority field.
	manualtask.DefaultPriority = manualtaskDescPriority.Default.(int)
	// manualtaskDescCreatedAt is the schema descriptor for created_at field.
	manualtaskDescCreatedAt := manualtaskFields[9].Descriptor()
	// manualtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	manualtask.DefaultCreatedAt = manualtaskDescCreatedAt.Default.(func() time.Time)
	scalingdecisionFields := schema.ScalingDecision{}.Fields()
	_ = scalingdecisionFields
	// scalingdecisionDescApplied is the schema descriptor for applied field.
	scalingdecisionDescApplied := scalingdecisionFields[7].Descriptor()
	// scalingdecision.DefaultApplied holds the default value on creation for the applied field.
	scalingdecision.DefaultApplied = scalingdecisionDescApplied.Default.(bool)
	// scalingdecisionDescCreatedAt is the schema descriptor for created_at field.
	scalingdecisionDescCreatedAt := scalingdecisionFields[8].Descriptor()
	// scalingdecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	scalingdecision.DefaultCreatedAt = scalingdecisionDescCreatedAt.Default.(func() time.Time)
	subtaskFields := schema.Subtask{}.Fields()
	_ = subtaskFields
	// subtaskDescRequiredCapabilities is the schema descriptor for required_capabilities field.
	subtaskDescRequiredCapabilities := subtaskFields[4].Descriptor()
	// subtask.DefaultRequiredCapabilities holds the default value on creation for the required_capabilities field.
	subtask.DefaultRequiredCapabilities = subtaskDescRequiredCapabilities.Default.([]string)
	// subtaskDescDependsOn is the schema descriptor for depends_on field.
	subtaskDescDependsOn := subtaskFields[6].Descriptor()
	// subtask.DefaultDependsOn holds the default value on creation for the depends_on field.
	subtask.DefaultDependsOn = subtaskDescDependsOn.Default.([]string)
	// subtaskDescRetryCount is the schema descriptor for retry_count field.
	subtaskDescRetryCount := subtaskFields[14].Descriptor()
	// subtask.DefaultRetryCount holds the default value on creation for the retry_count field.
	subtask.DefaultRetryCount = subtaskDescRetryCount.Default.(int)
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[15].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
	systemalertFields := schema.SystemAlert{}.Fields()
	_ = systemalertFields
	// systemalertDescCreatedAt is the schema descriptor for created_at field.
	systemalertDescCreatedAt := systemalertFields[7].Descriptor()
	// systemalert.DefaultCreatedAt holds the default value on creation for the created_at field.
	systemalert.DefaultCreatedAt = systemalertDescCreatedAt.Default.(func() time.Time)
	// systemalertDescAcknowledged is the schema descriptor for acknowledged field.
	systemalertDescAcknowledged := systemalertFields[8].Descriptor()
	// systemalert.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	systemalert.DefaultAcknowledged = systemalertDescAcknowledged.Default.(bool)
	// systemalertDescResolved is the schema descriptor for resolved field.
	systemalertDescResolved := systemalertFields[10].Descriptor()
	// systemalert.DefaultResolved holds the default value on creation for the resolved field.
	systemalert.DefaultResolved = systemalertDescResolved.Default.(bool)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[3].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescDecompositionStrategy is the schema descriptor for decomposition_strategy field.
	taskDescDecompositionStrategy := taskFields[4].Descriptor()
	// task.DefaultDecompositionStrategy holds the default value on creation for the decomposition_strategy field.
	task.DefaultDecompositionStrategy = taskDescDecompositionStrategy.Default.(string)
	// taskDescDelegationStrategy is the schema descriptor for delegation_strategy field.
	taskDescDelegationStrategy := taskFields[5].Descriptor()
	// task.DefaultDelegationStrategy holds the default value on creation for the delegation_strategy field.
	task.DefaultDelegationStrategy = taskDescDelegationStrategy.Default.(string)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	taskdecompositionFields := schema.TaskDecomposition{}.Fields()
	_ = taskdecompositionFields
	// taskdecompositionDescCriticalPath is the schema descriptor for critical_path field.
	taskdecompositionDescCriticalPath := taskdecompositionFields[6].Descriptor()
	// taskdecomposition.DefaultCriticalPath holds the default value on creation for the critical_path field.
	taskdecomposition.DefaultCriticalPath = taskdecompositionDescCriticalPath.Default.([]string)
	// taskdecompositionDescCreatedAt is the schema descriptor for created_at field.
	taskdecompositionDescCreatedAt := taskdecompositionFields[7].Descriptor()
	// taskdecomposition.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskdecomposition.DefaultCreatedAt = taskdecompositionDescCreatedAt.Default.(func() time.Time)
	taskqueuestatFields := schema.TaskQueueStat{}.Fields()
	_ = taskqueuestatFields
	// taskqueuestatDescSampledAt is the schema descriptor for sampled_at field.
	taskqueuestatDescSampledAt := taskqueuestatFields[6].Descriptor()
	// taskqueuestat.DefaultSampledAt holds the default value on creation for the sampled_at field.
	taskqueuestat.DefaultSampledAt = taskqueuestatDescSampledAt.Default.(func() time.Time)
	taskworkerFields := schema.TaskWorker{}.Fields()
	_ = taskworkerFields
	// taskworkerDescKind is the schema descriptor for kind field.
	taskworkerDescKind := taskworkerFields[1].Descriptor()
	// taskworker.DefaultKind holds the default value on creation for the kind field.
	taskworker.DefaultKind = taskworkerDescKind.Default.(string)
	// taskworkerDescMaxTasks is the schema descriptor for max_tasks field.
	taskworkerDescMaxTasks := taskworkerFields[5].Descriptor()
	// taskworker.DefaultMaxTasks holds the default value on creation for the max_tasks field.
	taskworker.DefaultMaxTasks = taskworkerDescMaxTasks.Default.(int)
	// taskworkerDescActiveTasks is the schema descriptor for active_tasks field.
	taskworkerDescActiveTasks := taskworkerFields[6].Descriptor()
	// taskworker.DefaultActiveTasks holds the default value on creation for the active_tasks field.
	taskworker.DefaultActiveTasks = taskworkerDescActiveTasks.Default.(int)
	// taskworkerDescQueues is the schema descriptor for queues field.
	taskworkerDescQueues := taskworkerFields[7].Descriptor()
	// taskworker.DefaultQueues holds the default value on creation for the queues field.
	taskworker.DefaultQueues = taskworkerDescQueues.Default.([]string)
	// taskworkerDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	taskworkerDescLastHeartbeat := taskworkerFields[10].Descriptor()
	// taskworker.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	taskworker.DefaultLastHeartbeat = taskworkerDescLastHeartbeat.Default.(func() time.Time)
	// taskworkerDescRegisteredAt is the schema descriptor for registered_at field.
	taskworkerDescRegisteredAt := taskworkerFields[11].Descriptor()
	// taskworker.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	taskworker.DefaultRegisteredAt = taskworkerDescRegisteredAt.Default.(func() time.Time)
	workereventFields := schema.WorkerEvent{}.Fields()
	_ = workereventFields
	// workereventDescCreatedAt is the schema descriptor for created_at field.
	workereventDescCreatedAt := workereventFields[4].Descriptor()
	// workerevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	workerevent.DefaultCreatedAt = workereventDescCreatedAt.Default.(func() time.Time)
}
