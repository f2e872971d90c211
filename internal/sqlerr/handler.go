package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/pos-backend/internal/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// mysqlTablePattern pulls the table out of mysql constraint messages such as
// "a foreign key constraint fails (`pos`.`Product_Supplier`, CONSTRAINT ...".
var mysqlTablePattern = regexp.MustCompile("\\(`[^`]+`\\.`([^`]+)`")

// ErrCode reports the Code of err, or Other when err is not a driver error.
func ErrCode(err error) Code {
	if sqlErr := Classify(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw postgres error into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertMySQLError converts a mysql server error into an Error. MySQL does
// not report the table separately, so it is recovered from the message
// when present.
func ConvertMySQLError(src *mysql.MySQLError) *Error {
	var table string
	if m := mysqlTablePattern.FindStringSubmatch(src.Message); len(m) > 1 {
		table = m[1]
	}

	return &Error{
		Code:         MapMySQLCode(src.Number),
		Severity:     SeverityError,
		DatabaseCode: fmt.Sprintf("%d", src.Number),
		Message:      src.Message,
		TableName:    table,
		driverErr:    src,
	}
}

// Classify returns the Error for a postgres or mysql driver error found
// in err's chain, or nil.
func Classify(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return ConvertMySQLError(myErr)
	}

	return nil
}

// Message returns the message the store reported for err: the server
// message of a driver error, or err.Error() for anything else.
func Message(err error) string {
	if sqlErr := Classify(err); sqlErr != nil {
		return sqlErr.Message
	}
	return err.Error()
}

// generateErrorCode builds a log-friendly code of the form <DOMAIN>_<ACTION>,
// e.g. Product_Supplier + ForeignKeyViolation => PRODUCT_SUPPLIER_NOT_FOUND.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// Summary is a human readable description of a classified error. It is
// logged next to the raw message and never sent to clients.
func Summary(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<name>ID" style column, then the table name.
func getEntityName(tableName, columnName string) string {
	lower := strings.ToLower(columnName)
	for _, suffix := range []string{"_id", "id"} {
		if columnName != "" && strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			return humanizeText(strings.TrimSuffix(lower, suffix))
		}
	}

	if tableName != "" {
		return humanizeText(strings.ToLower(tableName))
	}

	return "record"
}

// humanizeText converts snake_case into Title Case ("first_name" -> "First Name").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a failed store operation into the API error.
//
// The status is always 500 and the message is the store's own message.
// Classification only picks the Code used for logging. An *errs.HTTPError
// is returned unchanged.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	sqlErr := Classify(err)
	if sqlErr == nil {
		return errs.NewStoreError(err.Error(), "")
	}

	return errs.NewStoreError(sqlErr.Message, generateErrorCode(sqlErr.TableName, sqlErr.Code))
}
