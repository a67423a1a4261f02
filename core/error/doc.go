// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error system.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial documentation

// Package error provides structured errors for the beamctl command pipeline.
//
// Every failure in the pipeline carries a closed Code from one of six
// families (syntax, parameter, safety, template, execution, configuration),
// an ordered Severity, and optionally the operation name, detail values, and
// a suggested correction for the user. Validation stages return these errors
// inside result structs rather than raising them; only the dispatcher
// surfaces errors to callers.
//
//	err := cmderror.New("intensity must be between 0 and 100").
//		WithCode(cmderror.CodeParamOutOfRange).
//		WithOperation("param.ValidateNumeric").
//		WithDetail("value", 150)
package error
