/*

Package gconf provides a toolset for managing an extension configuration.

Every extension can declare a configuration object that is stored as a
database singleton, one per package. Configuration is loaded from the genesis
during the chain initialization and can be updated at runtime only through a
dedicated patch message, authorized by the configuration owner.

*/
package gconf
