/*
Package schedule is the availability poll aggregation core: slot generation,
response validation, and tallying.

Everything here is pure computation over in-memory values. Slot sequences
are deterministic functions of the event config, so they are regenerated on
every request rather than stored; a slot's identity is its ordinal position
in the generated sequence. Responses whose answer counts do not match the
current sequence are excluded from tallies rather than treated as errors.
*/
package schedule
