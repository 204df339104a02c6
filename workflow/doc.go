/*
Package workflow contains the editorial states of a publication and the transitions which the console offers.

Pipeline

A publication is created as DRAFT by the publications backend. The console offers these transitions:

  DRAFT     -- Send to Review --> IN_REVIEW
  IN_REVIEW -- Approve        --> APPROVED
  IN_REVIEW -- Reject         --> REJECTED
  APPROVED  -- Publish        --> PUBLISHED

PUBLISHED, REJECTED and REQUIRES_CHANGES are terminal as far as the console is concerned.

The table only decides which buttons are shown. It is not enforced, the backend accepts or rejects every requested transition.

Status Dialog

Each transition is confirmed in a Dialog. The dialog asks for an editor name when sending to review,
and for a rejection reason (required) when rejecting. Neither is transmitted, the status change request carries the target status only.
*/
package workflow
