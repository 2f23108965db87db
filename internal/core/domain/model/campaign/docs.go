// Package campaign provides domain entities for campaign management in the
// goods-distribution system. A campaign is a time-bounded drive during which
// goods are handed out to registered users through staffed delivery points.
//
// The package includes:
//   - Campaign: The aggregate root carrying the distribution window and behaviour flags
//   - DeliveryPoint: A staffed location belonging to exactly one campaign
//   - Agreement and CampaignAgreement: consent clauses attached to campaigns
//   - OperatorAssignment and UserAssignment: staff and user links to delivery points
//
// Key business rules:
//   - Campaign names and slugs are unique; slugs contain at least one letter
//   - A campaign is in progress until its end date passes
//   - Behaviour flags control agreement requirements, operator-created deliveries
//     and whether a disabled delivery may be replaced
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package campaign
