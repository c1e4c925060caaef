// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/monailabs/monai/db/ent/schema"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
	"github.com/monailabs/monai/gen/ent/querylog"
	"github.com/monailabs/monai/gen/ent/rule"
	"github.com/monailabs/monai/gen/ent/rulegroup"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescJobName is the schema descriptor for job_name field.
	jobDescJobName := jobFields[1].Descriptor()
	// job.JobNameValidator is a validator for the "job_name" field. It is called by the builders before save.
	job.JobNameValidator = jobDescJobName.Validators[0].(func(string) error)
	// jobDescJobFilename is the schema descriptor for job_filename field.
	jobDescJobFilename := jobFields[2].Descriptor()
	// job.JobFilenameValidator is a validator for the "job_filename" field. It is called by the builders before save.
	job.JobFilenameValidator = jobDescJobFilename.Validators[0].(func(string) error)
	// jobDescIsActive is the schema descriptor for is_active field.
	jobDescIsActive := jobFields[4].Descriptor()
	// job.DefaultIsActive holds the default value on creation for the is_active field.
	job.DefaultIsActive = jobDescIsActive.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[6].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.IDValidator is a validator for the "id" field. It is called by the builders before save.
	job.IDValidator = func() func(string) error {
		validators := jobDescID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(id string) error {
			for _, fn := range fns {
				if err := fn(id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	jobdataFields := schema.JobData{}.Fields()
	_ = jobdataFields
	// jobdataDescJobID is the schema descriptor for job_id field.
	jobdataDescJobID := jobdataFields[1].Descriptor()
	// jobdata.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	jobdata.JobIDValidator = jobdataDescJobID.Validators[0].(func(string) error)
	// jobdataDescReceivedAt is the schema descriptor for received_at field.
	jobdataDescReceivedAt := jobdataFields[3].Descriptor()
	// jobdata.DefaultReceivedAt holds the default value on creation for the received_at field.
	jobdata.DefaultReceivedAt = jobdataDescReceivedAt.Default.(func() time.Time)
	// jobdataDescWeekday is the schema descriptor for weekday field.
	jobdataDescWeekday := jobdataFields[4].Descriptor()
	// jobdata.WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	jobdata.WeekdayValidator = jobdataDescWeekday.Validators[0].(func(string) error)
	// jobdataDescMonth is the schema descriptor for month field.
	jobdataDescMonth := jobdataFields[5].Descriptor()
	// jobdata.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	jobdata.MonthValidator = jobdataDescMonth.Validators[0].(func(string) error)
	// jobdataDescIsHoliday is the schema descriptor for is_holiday field.
	jobdataDescIsHoliday := jobdataFields[6].Descriptor()
	// jobdata.DefaultIsHoliday holds the default value on creation for the is_holiday field.
	jobdata.DefaultIsHoliday = jobdataDescIsHoliday.Default.(bool)
	// jobdataDescIsOutlier is the schema descriptor for is_outlier field.
	jobdataDescIsOutlier := jobdataFields[7].Descriptor()
	// jobdata.DefaultIsOutlier holds the default value on creation for the is_outlier field.
	jobdata.DefaultIsOutlier = jobdataDescIsOutlier.Default.(bool)
	// jobdataDescForcedResult is the schema descriptor for forced_result field.
	jobdataDescForcedResult := jobdataFields[8].Descriptor()
	// jobdata.DefaultForcedResult holds the default value on creation for the forced_result field.
	jobdata.DefaultForcedResult = jobdataDescForcedResult.Default.(bool)
	// jobdataDescID is the schema descriptor for id field.
	jobdataDescID := jobdataFields[0].Descriptor()
	// jobdata.DefaultID holds the default value on creation for the id field.
	jobdata.DefaultID = jobdataDescID.Default.(func() uuid.UUID)
	querylogFields := schema.QueryLog{}.Fields()
	_ = querylogFields
	// querylogDescJobID is the schema descriptor for job_id field.
	querylogDescJobID := querylogFields[1].Descriptor()
	// querylog.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	querylog.JobIDValidator = querylogDescJobID.Validators[0].(func(string) error)
	// querylogDescResult is the schema descriptor for result field.
	querylogDescResult := querylogFields[3].Descriptor()
	// querylog.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	querylog.ResultValidator = querylogDescResult.Validators[0].(func(string) error)
	// querylogDescIPAddress is the schema descriptor for ip_address field.
	querylogDescIPAddress := querylogFields[5].Descriptor()
	// querylog.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	querylog.IPAddressValidator = querylogDescIPAddress.Validators[0].(func(string) error)
	// querylogDescFingerprint is the schema descriptor for fingerprint field.
	querylogDescFingerprint := querylogFields[8].Descriptor()
	// querylog.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	querylog.FingerprintValidator = querylogDescFingerprint.Validators[0].(func(string) error)
	// querylogDescReceivedAt is the schema descriptor for received_at field.
	querylogDescReceivedAt := querylogFields[9].Descriptor()
	// querylog.DefaultReceivedAt holds the default value on creation for the received_at field.
	querylog.DefaultReceivedAt = querylogDescReceivedAt.Default.(func() time.Time)
	// querylogDescHistoryCount is the schema descriptor for history_count field.
	querylogDescHistoryCount := querylogFields[10].Descriptor()
	// querylog.DefaultHistoryCount holds the default value on creation for the history_count field.
	querylog.DefaultHistoryCount = querylogDescHistoryCount.Default.(int)
	// querylogDescID is the schema descriptor for id field.
	querylogDescID := querylogFields[0].Descriptor()
	// querylog.DefaultID holds the default value on creation for the id field.
	querylog.DefaultID = querylogDescID.Default.(func() uuid.UUID)
	ruleFields := schema.Rule{}.Fields()
	_ = ruleFields
	// ruleDescName is the schema descriptor for name field.
	ruleDescName := ruleFields[1].Descriptor()
	// rule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	rule.NameValidator = ruleDescName.Validators[0].(func(string) error)
	// ruleDescRuleText is the schema descriptor for rule_text field.
	ruleDescRuleText := ruleFields[3].Descriptor()
	// rule.RuleTextValidator is a validator for the "rule_text" field. It is called by the builders before save.
	rule.RuleTextValidator = ruleDescRuleText.Validators[0].(func(string) error)
	// ruleDescIsActive is the schema descriptor for is_active field.
	ruleDescIsActive := ruleFields[4].Descriptor()
	// rule.DefaultIsActive holds the default value on creation for the is_active field.
	rule.DefaultIsActive = ruleDescIsActive.Default.(bool)
	// ruleDescCreatedAt is the schema descriptor for created_at field.
	ruleDescCreatedAt := ruleFields[5].Descriptor()
	// rule.DefaultCreatedAt holds the default value on creation for the created_at field.
	rule.DefaultCreatedAt = ruleDescCreatedAt.Default.(func() time.Time)
	// ruleDescUpdatedAt is the schema descriptor for updated_at field.
	ruleDescUpdatedAt := ruleFields[6].Descriptor()
	// rule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rule.DefaultUpdatedAt = ruleDescUpdatedAt.Default.(func() time.Time)
	// rule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rule.UpdateDefaultUpdatedAt = ruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ruleDescID is the schema descriptor for id field.
	ruleDescID := ruleFields[0].Descriptor()
	// rule.DefaultID holds the default value on creation for the id field.
	rule.DefaultID = ruleDescID.Default.(func() uuid.UUID)
	rulegroupFields := schema.RuleGroup{}.Fields()
	_ = rulegroupFields
	// rulegroupDescName is the schema descriptor for name field.
	rulegroupDescName := rulegroupFields[1].Descriptor()
	// rulegroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	rulegroup.NameValidator = rulegroupDescName.Validators[0].(func(string) error)
	// rulegroupDescIsActive is the schema descriptor for is_active field.
	rulegroupDescIsActive := rulegroupFields[3].Descriptor()
	// rulegroup.DefaultIsActive holds the default value on creation for the is_active field.
	rulegroup.DefaultIsActive = rulegroupDescIsActive.Default.(bool)
	// rulegroupDescCreatedAt is the schema descriptor for created_at field.
	rulegroupDescCreatedAt := rulegroupFields[4].Descriptor()
	// rulegroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	rulegroup.DefaultCreatedAt = rulegroupDescCreatedAt.Default.(func() time.Time)
	// rulegroupDescUpdatedAt is the schema descriptor for updated_at field.
	rulegroupDescUpdatedAt := rulegroupFields[5].Descriptor()
	// rulegroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rulegroup.DefaultUpdatedAt = rulegroupDescUpdatedAt.Default.(func() time.Time)
	// rulegroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rulegroup.UpdateDefaultUpdatedAt = rulegroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// rulegroupDescID is the schema descriptor for id field.
	rulegroupDescID := rulegroupFields[0].Descriptor()
	// rulegroup.DefaultID holds the default value on creation for the id field.
	rulegroup.DefaultID = rulegroupDescID.Default.(func() uuid.UUID)
}
